package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
)

// UserRole is the dashboard role of a merchant user.
type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleStaff UserRole = "staff"
)

// IsValid checks if the role is a known UserRole
func (r UserRole) IsValid() bool {
	return r == UserRoleOwner || r == UserRoleStaff
}

// UserStatus represents the status of a merchant user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

var userEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a merchant dashboard account belonging to a single store.
type User struct {
	shared.StoreAggregateRoot
	Email        string     `gorm:"size:255;not null;uniqueIndex:idx_user_store_email,priority:2"`
	PasswordHash string     `gorm:"size:255;not null"`
	Name         string     `gorm:"size:255;not null"`
	Role         UserRole   `gorm:"size:16;not null;default:'staff'"`
	Status       UserStatus `gorm:"size:16;not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName specifies the database table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a merchant user for a store. The password is hashed
// with bcrypt before it is stored.
func NewUser(storeID uuid.UUID, email, password, name string, role UserRole) (*User, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !userEmailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}
	hash, err := hashUserPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Email:              email,
		PasswordHash:       hash,
		Name:               name,
		Role:               role,
		Status:             UserStatusActive,
	}, nil
}

func hashUserPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(password string) error {
	hash, err := hashUserPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// SetRole changes the user's dashboard role.
func (u *User) SetRole(role UserRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// IsOwner reports whether the user owns the store.
func (u *User) IsOwner() bool {
	return u.Role == UserRoleOwner
}

// RecordLogin stamps the last successful login time.
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Disable blocks the user from logging in.
func (u *User) Disable() {
	u.Status = UserStatusDisabled
	u.UpdatedAt = time.Now()
}

// Enable re-activates a disabled user account.
func (u *User) Enable() {
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
}

// IsActive reports whether the user may log in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

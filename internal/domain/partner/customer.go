package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer account
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusDisabled CustomerStatus = "disabled"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer is a shopper account registered on a store's storefront.
// Customer accounts are scoped to a single store; the same email may
// register independently on different stores.
type Customer struct {
	shared.StoreAggregateRoot
	Email        string         `gorm:"size:255;not null;uniqueIndex:idx_customer_store_email,priority:2"`
	PasswordHash string         `gorm:"size:255;not null"`
	Name         string         `gorm:"size:255;not null"`
	Phone        string         `gorm:"size:64;index"`
	Status       CustomerStatus `gorm:"size:16;not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName specifies the database table name
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer registers a customer on a store. The password is hashed
// with bcrypt before it is stored.
func NewCustomer(storeID uuid.UUID, email, password, name string) (*Customer, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Customer{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Email:              email,
		PasswordHash:       hash,
		Name:               name,
		Status:             CustomerStatusActive,
	}, nil
}

func hashPassword(password string) (string, error) {
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
func (c *Customer) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash.
func (c *Customer) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateProfile updates the customer's display name and phone.
func (c *Customer) UpdateProfile(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	c.Name = name
	c.Phone = phone
	c.UpdatedAt = time.Now()
	return nil
}

// RecordLogin stamps the last successful login time.
func (c *Customer) RecordLogin() {
	now := time.Now()
	c.LastLoginAt = &now
	c.UpdatedAt = now
}

// Disable blocks the customer from logging in.
func (c *Customer) Disable() {
	c.Status = CustomerStatusDisabled
	c.UpdatedAt = time.Now()
}

// Enable re-activates a disabled customer account.
func (c *Customer) Enable() {
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
}

// IsActive reports whether the customer may log in and place orders.
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

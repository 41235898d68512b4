package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/identity"
)

// LoginInput contains merchant login credentials
type LoginInput struct {
	StoreSlug string `json:"store_slug" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// LoginResult contains the issued tokens and the authenticated user
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserView  `json:"user"`
}

// RefreshInput contains the refresh token
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordInput contains the old and new password
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UserView is the API representation of a dashboard user
type UserView struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView maps a domain user to its API representation
func NewUserView(u *identity.User) UserView {
	return UserView{
		ID:        u.ID,
		StoreID:   u.StoreID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

// StoreView is the API representation of a store
type StoreView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CurrencyCode string    `json:"currency_code"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewStoreView maps a domain store to its API representation
func NewStoreView(s *identity.Store) StoreView {
	return StoreView{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		LogoURL:      s.LogoURL,
		CurrencyCode: s.CurrencyCode,
		ContactEmail: s.ContactEmail,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

// RegisterStoreInput contains everything needed to open a store with its
// owner account
type RegisterStoreInput struct {
	StoreName    string `json:"store_name" binding:"required"`
	StoreSlug    string `json:"store_slug" binding:"required"`
	CurrencyCode string `json:"currency_code"`
	OwnerEmail   string `json:"owner_email" binding:"required,email"`
	OwnerName    string `json:"owner_name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
}

// RegisterStoreResult contains the created store and owner
type RegisterStoreResult struct {
	Store StoreView `json:"store"`
	Owner UserView  `json:"owner"`
}

// UpdateStoreInput contains editable store fields
type UpdateStoreInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	LogoURL      string `json:"logo_url"`
}

// CreateUserInput contains fields for adding a staff account
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

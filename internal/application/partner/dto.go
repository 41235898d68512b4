package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/partner"
)

// RegisterInput contains storefront customer signup fields
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginInput contains storefront customer login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult contains the issued tokens and the authenticated customer
type AuthResult struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	Customer              CustomerView `json:"customer"`
}

// UpdateProfileInput contains editable customer profile fields
type UpdateProfileInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// ChangePasswordInput contains the old and new password
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// CustomerView is the API representation of a customer account
type CustomerView struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     uuid.UUID  `json:"store_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewCustomerView maps a domain customer to its API representation
func NewCustomerView(c *partner.Customer) CustomerView {
	return CustomerView{
		ID:          c.ID,
		StoreID:     c.StoreID,
		Email:       c.Email,
		Name:        c.Name,
		Phone:       c.Phone,
		Status:      string(c.Status),
		LastLoginAt: c.LastLoginAt,
		CreatedAt:   c.CreatedAt,
	}
}

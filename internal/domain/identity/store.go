package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// StoreStatus represents the operational status of a store
type StoreStatus string

const (
	StoreStatusActive    StoreStatus = "active"
	StoreStatusSuspended StoreStatus = "suspended"
	StoreStatusClosed    StoreStatus = "closed"
)

var storeSlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store is a merchant storefront. Every merchant-owned row in the system
// carries the store ID; the slug doubles as the storefront subdomain.
type Store struct {
	shared.BaseAggregateRoot
	Name         string      `gorm:"size:255;not null"`
	Slug         string      `gorm:"size:64;not null;uniqueIndex"`
	Description  string      `gorm:"type:text"`
	LogoURL      string      `gorm:"size:1024"`
	CurrencyCode string      `gorm:"size:3;not null;default:'USD'"`
	ContactEmail string      `gorm:"size:255"`
	Status       StoreStatus `gorm:"size:16;not null;default:'active'"`
	SuspendedAt  *time.Time
}

// TableName specifies the database table name
func (Store) TableName() string {
	return "stores"
}

// NewStore creates an active store with the given display name and slug.
func NewStore(name, slug, currencyCode string) (*Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	if err := validateStoreSlug(slug); err != nil {
		return nil, err
	}
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency code must be a 3-letter ISO code")
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		CurrencyCode:      currencyCode,
		Status:            StoreStatusActive,
	}, nil
}

func validateStoreSlug(slug string) error {
	if len(slug) < 3 || len(slug) > 64 {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be between 3 and 64 characters")
	}
	if !storeSlugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug may only contain lowercase letters, digits and hyphens")
	}
	return nil
}

// Update changes the store's display details.
func (s *Store) Update(name, description, contactEmail string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	s.Name = name
	s.Description = description
	s.ContactEmail = contactEmail
	s.UpdatedAt = time.Now()
	return nil
}

// SetLogoURL updates the store logo.
func (s *Store) SetLogoURL(url string) {
	s.LogoURL = url
	s.UpdatedAt = time.Now()
}

// Suspend takes the storefront offline. Suspended stores reject logins
// and storefront traffic but keep their data.
func (s *Store) Suspend() error {
	if s.Status == StoreStatusClosed {
		return shared.NewDomainError("STORE_CLOSED", "A closed store cannot be suspended")
	}
	now := time.Now()
	s.Status = StoreStatusSuspended
	s.SuspendedAt = &now
	s.UpdatedAt = now
	return nil
}

// Reactivate brings a suspended store back online.
func (s *Store) Reactivate() error {
	if s.Status != StoreStatusSuspended {
		return shared.NewDomainError("STORE_NOT_SUSPENDED", "Only suspended stores can be reactivated")
	}
	s.Status = StoreStatusActive
	s.SuspendedAt = nil
	s.UpdatedAt = time.Now()
	return nil
}

// Close permanently shuts the store.
func (s *Store) Close() {
	s.Status = StoreStatusClosed
	s.UpdatedAt = time.Now()
}

// IsActive reports whether the storefront should serve traffic.
func (s *Store) IsActive() bool {
	return s.Status == StoreStatusActive
}

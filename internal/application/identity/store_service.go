package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// StoreService manages store registration and settings
type StoreService struct {
	storeRepo identity.StoreRepository
	userRepo  identity.UserRepository
	tx        shared.TransactionManager
	logger    *zap.Logger
}

// NewStoreService creates a new StoreService
func NewStoreService(
	storeRepo identity.StoreRepository,
	userRepo identity.UserRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		tx:        tx,
		logger:    logger,
	}
}

// Register opens a new store together with its owner account
func (s *StoreService) Register(ctx context.Context, input RegisterStoreInput) (*RegisterStoreResult, error) {
	exists, err := s.storeRepo.ExistsBySlug(ctx, input.StoreSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A store with this slug already exists")
	}

	currency := input.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	store, err := identity.NewStore(input.StoreName, input.StoreSlug, currency)
	if err != nil {
		return nil, err
	}

	owner, err := identity.NewUser(store.ID, input.OwnerEmail, input.Password, input.OwnerName, identity.UserRoleOwner)
	if err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.storeRepo.Save(ctx, store); err != nil {
			return err
		}
		return s.userRepo.Save(ctx, owner)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("store registered",
		zap.String("store_id", store.ID.String()),
		zap.String("slug", store.Slug))

	return &RegisterStoreResult{
		Store: NewStoreView(store),
		Owner: NewUserView(owner),
	}, nil
}

// Get returns a store by ID
func (s *StoreService) Get(ctx context.Context, storeID uuid.UUID) (*StoreView, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	view := NewStoreView(store)
	return &view, nil
}

// Update edits store settings
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, input UpdateStoreInput) (*StoreView, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := store.Update(input.Name, input.Description, input.ContactEmail); err != nil {
		return nil, err
	}
	if input.LogoURL != "" {
		store.SetLogoURL(input.LogoURL)
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	view := NewStoreView(store)
	return &view, nil
}

// CreateUser adds a staff account to the store
func (s *StoreService) CreateUser(ctx context.Context, storeID uuid.UUID, input CreateUserInput) (*UserView, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, storeID, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "A user with this email already exists")
	}

	role := identity.UserRole(strings.ToLower(input.Role))
	user, err := identity.NewUser(storeID, input.Email, input.Password, input.Name, role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	view := NewUserView(user)
	return &view, nil
}

// ListUsers lists the store's dashboard accounts
func (s *StoreService) ListUsers(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[UserView], error) {
	page, err := s.userRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return shared.Paginated[UserView]{}, err
	}

	views := make([]UserView, 0, len(page.Items))
	for _, u := range page.Items {
		views = append(views, NewUserView(u))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// RemoveUser deletes a staff account. The owner cannot be removed.
func (s *StoreService) RemoveUser(ctx context.Context, storeID, userID uuid.UUID) error {
	user, err := s.userRepo.FindByIDForStore(ctx, storeID, userID)
	if err != nil {
		return err
	}
	if user.IsOwner() {
		return shared.NewDomainError("CANNOT_REMOVE_OWNER", "The store owner account cannot be removed")
	}
	return s.userRepo.DeleteForStore(ctx, storeID, userID)
}

package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// CustomerService handles storefront customer accounts: self-service
// signup and login on the shop side, and account management on the
// dashboard side.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

// Register creates a customer account for a store and logs it in
func (s *CustomerService) Register(ctx context.Context, storeID uuid.UUID, input RegisterInput) (*AuthResult, error) {
	exists, err := s.customerRepo.ExistsByEmail(ctx, storeID, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	customer, err := partner.NewCustomer(storeID, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("store_id", storeID.String()))

	return s.issueTokens(customer)
}

// Login authenticates a customer against its store
func (s *CustomerService) Login(ctx context.Context, storeID uuid.UUID, input LoginInput) (*AuthResult, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, storeID, input.Email)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !customer.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}
	if !customer.CheckPassword(input.Password) {
		s.logger.Warn("invalid customer password attempt",
			zap.String("customer_id", customer.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	customer.RecordLogin()
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("failed to record customer login", zap.Error(err))
	}

	return s.issueTokens(customer)
}

func (s *CustomerService) issueTokens(customer *partner.Customer) (*AuthResult, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		StoreID:   customer.StoreID,
		SubjectID: customer.ID,
		Email:     customer.Email,
		Actor:     auth.ActorCustomer,
	})
	if err != nil {
		s.logger.Error("failed to generate customer tokens", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		Customer:              NewCustomerView(customer),
	}, nil
}

// Refresh exchanges a customer refresh token for a fresh pair
func (s *CustomerService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil || !claims.IsCustomer() {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	if revoked, err := s.blacklist.IsRevoked(ctx, claims.ID); err == nil && revoked {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token has been revoked")
	}

	customerID, err := claims.GetSubjectUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid")
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Account no longer exists")
	}
	if !customer.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken, customer.Email, "")
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Failed to refresh tokens")
	}

	return &AuthResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		Customer:              NewCustomerView(customer),
	}, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *CustomerService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to blacklist customer token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}
	return nil
}

// Me returns the authenticated customer's profile
func (s *CustomerService) Me(ctx context.Context, storeID, customerID uuid.UUID) (*CustomerView, error) {
	customer, err := s.customerRepo.FindByIDForStore(ctx, storeID, customerID)
	if err != nil {
		return nil, err
	}
	view := NewCustomerView(customer)
	return &view, nil
}

// UpdateProfile edits the customer's own profile
func (s *CustomerService) UpdateProfile(ctx context.Context, storeID, customerID uuid.UUID, input UpdateProfileInput) (*CustomerView, error) {
	customer, err := s.customerRepo.FindByIDForStore(ctx, storeID, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.UpdateProfile(input.Name, input.Phone); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	view := NewCustomerView(customer)
	return &view, nil
}

// ChangePassword verifies the current password and sets the new one
func (s *CustomerService) ChangePassword(ctx context.Context, storeID, customerID uuid.UUID, input ChangePasswordInput) error {
	customer, err := s.customerRepo.FindByIDForStore(ctx, storeID, customerID)
	if err != nil {
		return err
	}

	if !customer.CheckPassword(input.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := customer.ChangePassword(input.NewPassword); err != nil {
		return err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return err
	}

	refreshTTL := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.RevokeAllForSubject(ctx, customer.ID.String(), refreshTTL); err != nil {
		s.logger.Error("failed to revoke customer sessions", zap.Error(err))
	}
	return nil
}

// List returns the store's customers for the dashboard
func (s *CustomerService) List(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[CustomerView], error) {
	page, err := s.customerRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return shared.Paginated[CustomerView]{}, err
	}

	views := make([]CustomerView, 0, len(page.Items))
	for _, c := range page.Items {
		views = append(views, NewCustomerView(c))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}

// Get returns one customer for the dashboard
func (s *CustomerService) Get(ctx context.Context, storeID, customerID uuid.UUID) (*CustomerView, error) {
	return s.Me(ctx, storeID, customerID)
}

// SetStatus enables or disables a customer account from the dashboard
func (s *CustomerService) SetStatus(ctx context.Context, storeID, customerID uuid.UUID, active bool) (*CustomerView, error) {
	customer, err := s.customerRepo.FindByIDForStore(ctx, storeID, customerID)
	if err != nil {
		return nil, err
	}

	if active {
		customer.Enable()
	} else {
		customer.Disable()
		// Kill outstanding sessions so a disabled account stops working
		refreshTTL := s.jwtService.GetRefreshTokenExpiration()
		if err := s.blacklist.RevokeAllForSubject(ctx, customer.ID.String(), refreshTTL); err != nil {
			s.logger.Error("failed to revoke sessions for disabled customer", zap.Error(err))
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	view := NewCustomerView(customer)
	return &view, nil
}

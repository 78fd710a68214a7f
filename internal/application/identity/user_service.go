package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
)

// UserService handles account management operations
type UserService struct {
	userRepo   identity.UserRepository
	ledgerRepo billing.BalanceTransactionRepository
	hasher     identity.PasswordHasher
	events     shared.EventPublisher
	logger     *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	ledgerRepo billing.BalanceTransactionRepository,
	hasher identity.PasswordHasher,
	events shared.EventPublisher,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		hasher:     hasher,
		events:     events,
		logger:     logger,
	}
}

// publishEvents drains the aggregate's pending events onto the bus. Delivery
// runs after the database write, so a handler failure never undoes the write.
func (s *UserService) publishEvents(ctx context.Context, user *identity.User) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, user.GetDomainEvents()...); err != nil {
		s.logger.Warn("Failed to publish domain events",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}
	user.ClearDomainEvents()
}

// Register creates a new account with a hashed password.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*UserView, error) {
	if err := identity.ValidatePasswordPolicy(input.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "Email is already registered")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Password hashing failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process password")
	}

	user, err := identity.NewUser(input.Name, input.Email, hash, input.IsMentor)
	if err != nil {
		return nil, err
	}
	if input.Bio != "" {
		if err := user.UpdateProfile(input.Name, input.Bio, ""); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, user)

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_mentor", user.IsMentor))
	return NewUserView(user), nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewUserView(user), nil
}

// GetByEmail returns a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return NewUserView(user), nil
}

// UpdateProfile replaces a user's mutable profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(input.Name, input.Bio, input.ProfilePicture); err != nil {
		return nil, err
	}
	if input.HourlyRate != nil {
		if err := user.SetHourlyRate(*input.HourlyRate); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return NewUserView(user), nil
}

// SetBalance overwrites a user's balance, rejecting negative targets before
// any write, and appends an adjustment record to the ledger.
func (s *UserService) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) (decimal.Decimal, error) {
	if balance.IsNegative() {
		return decimal.Zero, shared.NewDomainError("NEGATIVE_BALANCE", "Balance cannot be negative")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	before := user.Balance
	if err := user.SetBalance(balance); err != nil {
		return decimal.Zero, err
	}
	if err := s.userRepo.SaveWithLock(ctx, user); err != nil {
		return decimal.Zero, err
	}
	s.publishEvents(ctx, user)

	if err := s.ledgerRepo.Save(ctx, billing.NewAdjustmentTransaction(user.ID, before, balance)); err != nil {
		// The balance write already committed; a missing audit row is
		// logged, not surfaced.
		s.logger.Error("Failed to record balance adjustment",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.logger.Info("Balance adjusted",
		zap.String("user_id", user.ID.String()),
		zap.String("balance_before", before.String()),
		zap.String("balance_after", balance.String()))
	return user.Balance, nil
}

// ListMentors returns mentors matching the filter.
func (s *UserService) ListMentors(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserView], error) {
	users, total, err := s.userRepo.FindMentors(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = *NewUserView(&users[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

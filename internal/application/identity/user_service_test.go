package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
)

func newTestUserService(userRepo *MockUserRepository, ledger *MockLedgerRepository, hasher *MockHasher) *UserService {
	return NewUserService(userRepo, ledger, hasher, nil, zap.NewNop())
}

func TestUserService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockHasher)
	service := newTestUserService(userRepo, new(MockLedgerRepository), hasher)

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	hasher.On("Hash", "long-enough-password").Return("hashed", nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	view, err := service.Register(context.Background(), RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "long-enough-password",
		IsMentor: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", view.Email)
	assert.True(t, view.IsMentor)
	userRepo.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestUserService(userRepo, new(MockLedgerRepository), new(MockHasher))

	userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := service.Register(context.Background(), RegisterInput{
		Name:     "Another",
		Email:    "taken@example.com",
		Password: "long-enough-password",
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_RegisterWeakPassword(t *testing.T) {
	service := newTestUserService(new(MockUserRepository), new(MockLedgerRepository), new(MockHasher))

	_, err := service.Register(context.Background(), RegisterInput{
		Name:     "User",
		Email:    "user@example.com",
		Password: "short",
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
}

func TestUserService_SetBalance(t *testing.T) {
	userRepo := new(MockUserRepository)
	ledger := new(MockLedgerRepository)
	service := newTestUserService(userRepo, ledger, new(MockHasher))

	user, err := identity.NewUser("Ada", "ada@example.com", "hash", false)
	require.NoError(t, err)
	require.NoError(t, user.SetBalance(decimal.NewFromInt(20)))

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("SaveWithLock", mock.Anything, user).Return(nil)
	ledger.On("Save", mock.Anything, mock.MatchedBy(func(tx *billing.BalanceTransaction) bool {
		return tx.Type == billing.BalanceTransactionTypeAdjustment &&
			tx.BalanceBefore.Equal(decimal.NewFromInt(20)) &&
			tx.BalanceAfter.Equal(decimal.NewFromInt(75))
	})).Return(nil)

	balance, err := service.SetBalance(context.Background(), user.ID, decimal.NewFromInt(75))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(75)))
	userRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestUserService_SetBalanceRejectsNegativeBeforeAnyRead(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestUserService(userRepo, new(MockLedgerRepository), new(MockHasher))

	user, err := identity.NewUser("Ada", "ada@example.com", "hash", false)
	require.NoError(t, err)

	_, err = service.SetBalance(context.Background(), user.ID, decimal.NewFromInt(-10))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NEGATIVE_BALANCE", domainErr.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestUserService_SetBalanceUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestUserService(userRepo, new(MockLedgerRepository), new(MockHasher))

	userRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	_, err := service.SetBalance(context.Background(), uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserService_ListMentors(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestUserService(userRepo, new(MockLedgerRepository), new(MockHasher))

	mentor, err := identity.NewUser("Mentor", "mentor@example.com", "hash", true)
	require.NoError(t, err)
	userRepo.On("FindMentors", mock.Anything, mock.Anything).
		Return([]identity.User{*mentor}, int64(1), nil)

	page, err := service.ListMentors(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mentor@example.com", page.Items[0].Email)
}

type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func TestUserService_RegisterPublishesRegisteredEvent(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockHasher)
	publisher := &capturingPublisher{}
	service := NewUserService(userRepo, new(MockLedgerRepository), hasher, publisher, zap.NewNop())

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	hasher.On("Hash", "long-enough-password").Return("hashed", nil)

	var saved *identity.User
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*identity.User)
		}).Return(nil)

	_, err := service.Register(context.Background(), RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	registered, ok := publisher.events[0].(*identity.UserRegisteredEvent)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", registered.Email)
	assert.Empty(t, saved.GetDomainEvents(), "events are cleared after publishing")
}

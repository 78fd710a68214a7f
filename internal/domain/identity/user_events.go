package identity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/shared"
)

// Event types for the user aggregate
const (
	EventUserRegistered     = "identity.user.registered"
	EventUserBalanceChanged = "identity.user.balance_changed"
	EventUserPasswordReset  = "identity.user.password_reset"
)

// UserRegisteredEvent is raised when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email    string `json:"email"`
	IsMentor bool   `json:"is_mentor"`
}

// NewUserRegisteredEvent creates a user registered event
func NewUserRegisteredEvent(userID uuid.UUID, email string, isMentor bool) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserRegistered, "User", userID),
		Email:           email,
		IsMentor:        isMentor,
	}
}

// UserBalanceChangedEvent is raised for every balance mutation
type UserBalanceChangedEvent struct {
	shared.BaseDomainEvent
	OldBalance decimal.Decimal `json:"old_balance"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewUserBalanceChangedEvent creates a balance changed event
func NewUserBalanceChangedEvent(userID uuid.UUID, oldBalance, newBalance decimal.Decimal) *UserBalanceChangedEvent {
	return &UserBalanceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserBalanceChanged, "User", userID),
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
	}
}

// UserPasswordResetEvent is raised when a password reset completes
type UserPasswordResetEvent struct {
	shared.BaseDomainEvent
}

// NewUserPasswordResetEvent creates a password reset event
func NewUserPasswordResetEvent(userID uuid.UUID) *UserPasswordResetEvent {
	return &UserPasswordResetEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserPasswordReset, "User", userID),
	}
}

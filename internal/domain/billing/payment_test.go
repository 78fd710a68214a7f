package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/domain/shared"
)

func newPendingPayment(t *testing.T, amount string) *Payment {
	t.Helper()
	p, err := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString(amount))
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newPendingPayment(t, "49.99")

	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("49.99")))
	assert.Nil(t, p.SessionID)
}

func TestNewPayment_AmountValidation(t *testing.T) {
	payer, mentor := uuid.New(), uuid.New()

	_, err := NewPayment(payer, mentor, decimal.Zero)
	assert.ErrorIs(t, err, ErrAmountNotPositive)

	_, err = NewPayment(payer, mentor, decimal.RequireFromString("-5"))
	assert.ErrorIs(t, err, ErrAmountNotPositive)

	// The smallest positive amount is acceptable.
	p, err := NewPayment(payer, mentor, decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("0.01")))
}

func TestNewPayment_PayerCannotBeMentor(t *testing.T) {
	id := uuid.New()
	_, err := NewPayment(id, id, decimal.NewFromInt(10))
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestPayment_Transitions(t *testing.T) {
	p := newPendingPayment(t, "10")
	require.NoError(t, p.MarkCompleted())
	assert.Equal(t, PaymentStatusCompleted, p.Status)

	p = newPendingPayment(t, "10")
	require.NoError(t, p.MarkFailed())
	assert.Equal(t, PaymentStatusFailed, p.Status)
}

func TestPayment_TerminalStatesAreFinal(t *testing.T) {
	p := newPendingPayment(t, "10")
	require.NoError(t, p.MarkCompleted())

	var domainErr *shared.DomainError

	err := p.MarkFailed()
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	// A completed payment cannot be completed again.
	err = p.MarkCompleted()
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	err = p.TransitionTo(PaymentStatusPending)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestPayment_UnknownStatusRejected(t *testing.T) {
	p := newPendingPayment(t, "10")

	err := p.TransitionTo(PaymentStatus("SETTLED"))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCompleted))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusPending))
	assert.False(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusCompleted))
}

func TestBalanceTransaction_Factories(t *testing.T) {
	userID := uuid.New()
	before := decimal.NewFromInt(100)
	after := decimal.NewFromInt(70)

	debit := NewDebitTransaction(userID, decimal.NewFromInt(30), before, after)
	assert.Equal(t, BalanceTransactionTypeDebit, debit.Type)
	assert.True(t, debit.BalanceBefore.Equal(before))
	assert.True(t, debit.BalanceAfter.Equal(after))
	assert.Nil(t, debit.PaymentID)

	paymentID := uuid.New()
	debit.WithPayment(paymentID)
	require.NotNil(t, debit.PaymentID)
	assert.Equal(t, paymentID, *debit.PaymentID)

	adj := NewAdjustmentTransaction(userID, decimal.NewFromInt(20), decimal.NewFromInt(50))
	assert.Equal(t, BalanceTransactionTypeAdjustment, adj.Type)
	assert.True(t, adj.Amount.Equal(decimal.NewFromInt(30)))
}

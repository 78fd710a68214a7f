package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/shared"
)

// BalanceTransactionType classifies a balance movement
type BalanceTransactionType string

const (
	// BalanceTransactionTypeDeposit is money added to an account
	BalanceTransactionTypeDeposit BalanceTransactionType = "DEPOSIT"
	// BalanceTransactionTypeDebit is the payer side of a settlement
	BalanceTransactionTypeDebit BalanceTransactionType = "DEBIT"
	// BalanceTransactionTypeCredit is the mentor side of a settlement
	BalanceTransactionTypeCredit BalanceTransactionType = "CREDIT"
	// BalanceTransactionTypeAdjustment is a direct balance overwrite
	BalanceTransactionTypeAdjustment BalanceTransactionType = "ADJUSTMENT"
)

// String returns the string representation of the type
func (t BalanceTransactionType) String() string {
	return string(t)
}

// IsValid reports whether the transaction type is a known value
func (t BalanceTransactionType) IsValid() bool {
	switch t {
	case BalanceTransactionTypeDeposit,
		BalanceTransactionTypeDebit,
		BalanceTransactionTypeCredit,
		BalanceTransactionTypeAdjustment:
		return true
	}
	return false
}

// BalanceTransaction is an immutable audit record of one balance movement.
// Records are append-only; corrections are new ADJUSTMENT entries, never
// edits.
type BalanceTransaction struct {
	shared.BaseEntity
	UserID        uuid.UUID
	PaymentID     *uuid.UUID
	Type          BalanceTransactionType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
}

func newBalanceTransaction(userID uuid.UUID, txType BalanceTransactionType, amount, before, after decimal.Decimal, description string) *BalanceTransaction {
	return &BalanceTransaction{
		BaseEntity:    shared.NewBaseEntity(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Description:   description,
	}
}

// WithPayment links the record to the payment that caused it.
func (t *BalanceTransaction) WithPayment(paymentID uuid.UUID) *BalanceTransaction {
	t.PaymentID = &paymentID
	return t
}

// NewDebitTransaction records the payer side of a settlement.
func NewDebitTransaction(userID uuid.UUID, amount, before, after decimal.Decimal) *BalanceTransaction {
	return newBalanceTransaction(userID, BalanceTransactionTypeDebit, amount, before, after, "Payment settlement debit")
}

// NewCreditTransaction records the mentor side of a settlement.
func NewCreditTransaction(userID uuid.UUID, amount, before, after decimal.Decimal) *BalanceTransaction {
	return newBalanceTransaction(userID, BalanceTransactionTypeCredit, amount, before, after, "Payment settlement credit")
}

// NewDepositTransaction records money added to an account.
func NewDepositTransaction(userID uuid.UUID, amount, before, after decimal.Decimal) *BalanceTransaction {
	return newBalanceTransaction(userID, BalanceTransactionTypeDeposit, amount, before, after, "Balance deposit")
}

// NewAdjustmentTransaction records a direct overwrite of the balance.
func NewAdjustmentTransaction(userID uuid.UUID, before, after decimal.Decimal) *BalanceTransaction {
	return newBalanceTransaction(userID, BalanceTransactionTypeAdjustment, after.Sub(before), before, after, "Balance adjustment")
}

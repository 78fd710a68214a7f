package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/billing"
)

// CreatePaymentInput carries the fields for creating a payment
type CreatePaymentInput struct {
	PayerID   uuid.UUID
	MentorID  uuid.UUID
	SessionID *uuid.UUID
	Amount    decimal.Decimal
}

// PaymentView is the read model for a payment
type PaymentView struct {
	ID        uuid.UUID  `json:"id"`
	PayerID   uuid.UUID  `json:"payerId"`
	MentorID  uuid.UUID  `json:"mentorId"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
	Amount    string     `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewPaymentView builds the read model from the aggregate
func NewPaymentView(p *billing.Payment) *PaymentView {
	return &PaymentView{
		ID:        p.ID,
		PayerID:   p.PayerID,
		MentorID:  p.MentorID,
		SessionID: p.SessionID,
		Amount:    p.Amount.String(),
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// TransactionView is the read model for one ledger entry
type TransactionView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	PaymentID     *uuid.UUID `json:"paymentId,omitempty"`
	Type          string     `json:"type"`
	Amount        string     `json:"amount"`
	BalanceBefore string     `json:"balanceBefore"`
	BalanceAfter  string     `json:"balanceAfter"`
	Description   string     `json:"description"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewTransactionView builds the read model from a ledger entry
func NewTransactionView(t *billing.BalanceTransaction) *TransactionView {
	return &TransactionView{
		ID:            t.ID,
		UserID:        t.UserID,
		PaymentID:     t.PaymentID,
		Type:          t.Type.String(),
		Amount:        t.Amount.String(),
		BalanceBefore: t.BalanceBefore.String(),
		BalanceAfter:  t.BalanceAfter.String(),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

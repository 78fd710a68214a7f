package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/shared"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

// Payment states. Completed and Failed are terminal; a payment never moves
// backward, which also makes a second settlement attempt a rejected
// transition rather than a silent double spend.
const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// ErrAmountNotPositive is returned when a payment is created with a
// non-positive amount.
var ErrAmountNotPositive = shared.NewDomainError("INVALID_AMOUNT",
	"Amount must be a positive number greater than zero.")

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusCompleted: {},
	PaymentStatusFailed:    {},
}

// String returns the string representation of the status
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is a known value
func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

// IsTerminal reports whether the status admits no further transitions
func (s PaymentStatus) IsTerminal() bool {
	return s.IsValid() && len(paymentTransitions[s]) == 0
}

// CanTransitionTo reports whether the transition is allowed
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Payment records a learner paying a mentor from their balance. It is
// created Pending; settlement moves it to Completed (funds transferred) or
// Failed (funds untouched).
type Payment struct {
	shared.BaseAggregateRoot
	PayerID   uuid.UUID
	MentorID  uuid.UUID
	SessionID *uuid.UUID
	Amount    decimal.Decimal
	Status    PaymentStatus
}

// NewPayment creates a pending payment. The amount must be strictly
// positive.
func NewPayment(payerID, mentorID uuid.UUID, amount decimal.Decimal) (*Payment, error) {
	if payerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYER", "Payer ID cannot be empty")
	}
	if mentorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENTOR", "Mentor ID cannot be empty")
	}
	if payerID == mentorID {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payer and mentor cannot be the same user")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}
	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PayerID:           payerID,
		MentorID:          mentorID,
		Amount:            amount,
		Status:            PaymentStatusPending,
	}, nil
}

// AttachSession links the payment to the session it pays for.
func (p *Payment) AttachSession(sessionID uuid.UUID) {
	if sessionID == uuid.Nil {
		return
	}
	p.SessionID = &sessionID
	p.Touch()
}

// TransitionTo moves the payment to a new state, rejecting illegal moves.
// A transition out of a terminal state is an INVALID_STATE conflict.
func (p *Payment) TransitionTo(target PaymentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown payment status: %s", target))
	}
	if !p.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition payment from %s to %s", p.Status, target))
	}
	p.Status = target
	p.IncrementVersion()
	p.Touch()
	return nil
}

// MarkCompleted transitions the payment to Completed.
func (p *Payment) MarkCompleted() error { return p.TransitionTo(PaymentStatusCompleted) }

// MarkFailed transitions the payment to Failed.
func (p *Payment) MarkFailed() error { return p.TransitionTo(PaymentStatusFailed) }

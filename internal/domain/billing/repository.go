package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// PaymentRepository defines persistence for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByPayer(ctx context.Context, payerID uuid.UUID, filter shared.Filter) ([]Payment, int64, error)
	FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]Payment, int64, error)
	Save(ctx context.Context, payment *Payment) error
	// SaveWithLock persists only when the stored row still carries the
	// previous version.
	SaveWithLock(ctx context.Context, payment *Payment) error
}

// BalanceTransactionRepository is an append-only store of balance movements
type BalanceTransactionRepository interface {
	Save(ctx context.Context, tx *BalanceTransaction) error
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]BalanceTransaction, int64, error)
}

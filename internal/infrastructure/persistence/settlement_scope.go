package persistence

import (
	"context"

	"gorm.io/gorm"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/identity"
)

// GormSettlementScope implements the billing transaction scope using GORM
// transactions, so a settlement's payment transition, both balance writes,
// and the ledger entries commit or roll back as one unit.
type GormSettlementScope struct {
	db *gorm.DB
}

// NewGormSettlementScope creates a new GormSettlementScope
func NewGormSettlementScope(db *gorm.DB) *GormSettlementScope {
	return &GormSettlementScope{db: db}
}

var _ appbilling.TransactionScope = (*GormSettlementScope)(nil)

// Execute runs the given function within a database transaction. If the
// function returns an error, the transaction is rolled back; otherwise it
// is committed.
func (s *GormSettlementScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSettlementRepositories{tx: tx})
	})
}

// gormSettlementRepositories binds the settlement repositories to one
// running transaction.
type gormSettlementRepositories struct {
	tx *gorm.DB
}

var _ appbilling.TransactionalRepositories = (*gormSettlementRepositories)(nil)

// Users returns the user repository scoped to the current transaction
func (r *gormSettlementRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Payments returns the payment repository scoped to the current transaction
func (r *gormSettlementRepositories) Payments() billing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Ledger returns the balance transaction repository scoped to the current
// transaction
func (r *gormSettlementRepositories) Ledger() billing.BalanceTransactionRepository {
	return NewGormBalanceTransactionRepository(r.tx)
}

package billing

import (
	"context"

	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/identity"
)

// TransactionalRepositories exposes the repositories a settlement touches,
// all bound to the same underlying transaction.
type TransactionalRepositories interface {
	Users() identity.UserRepository
	Payments() billing.PaymentRepository
	Ledger() billing.BalanceTransactionRepository
}

// TransactionScope runs a function against transactional repositories. The
// writes made through the repositories commit together, or not at all.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope passes through fixed repositories without any
// transaction boundary. Intended for tests.
type NoOpTransactionScope struct {
	Repos TransactionalRepositories
}

// Execute invokes fn with the fixed repositories.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.Repos)
}

// StaticRepositories is a TransactionalRepositories built from plain
// repository values. Intended for tests.
type StaticRepositories struct {
	UserRepo    identity.UserRepository
	PaymentRepo billing.PaymentRepository
	LedgerRepo  billing.BalanceTransactionRepository
}

// Users returns the user repository
func (r *StaticRepositories) Users() identity.UserRepository { return r.UserRepo }

// Payments returns the payment repository
func (r *StaticRepositories) Payments() billing.PaymentRepository { return r.PaymentRepo }

// Ledger returns the balance transaction repository
func (r *StaticRepositories) Ledger() billing.BalanceTransactionRepository { return r.LedgerRepo }

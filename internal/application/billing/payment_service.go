package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
)

// PaymentService handles payment creation and settlement
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	ledgerRepo  billing.BalanceTransactionRepository
	userRepo    identity.UserRepository
	scope       TransactionScope
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	ledgerRepo billing.BalanceTransactionRepository,
	userRepo identity.UserRepository,
	scope TransactionScope,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		ledgerRepo:  ledgerRepo,
		userRepo:    userRepo,
		scope:       scope,
		logger:      logger,
	}
}

// Create registers a pending payment from a payer to a mentor.
func (s *PaymentService) Create(ctx context.Context, input CreatePaymentInput) (*PaymentView, error) {
	if _, err := s.userRepo.FindByID(ctx, input.PayerID); err != nil {
		return nil, err
	}
	mentor, err := s.userRepo.FindByID(ctx, input.MentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsMentor {
		return nil, shared.NewDomainError("INVALID_PAYEE", "Payee is not a mentor")
	}

	payment, err := billing.NewPayment(input.PayerID, input.MentorID, input.Amount)
	if err != nil {
		return nil, err
	}
	if input.SessionID != nil {
		payment.AttachSession(*input.SessionID)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("amount", payment.Amount.String()))
	return NewPaymentView(payment), nil
}

// Get returns a payment by ID.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPaymentView(payment), nil
}

// UpdateStatus moves a payment along its state machine without touching
// balances. Settlement, which moves money, is Settle.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := payment.TransitionTo(billing.PaymentStatus(status)); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.SaveWithLock(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment status updated",
		zap.String("payment_id", payment.ID.String()),
		zap.String("status", payment.Status.String()))
	return NewPaymentView(payment), nil
}

// Settle moves the payment amount from payer to mentor. The status
// transition, both balance writes, and the ledger entries commit in one
// database transaction; only a pending payment settles, so a payment can
// never be settled twice. When the payer cannot cover the amount the
// payment is marked failed and no balance changes.
func (s *PaymentService) Settle(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	var (
		view      *PaymentView
		settleErr error
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if payment.Status != billing.PaymentStatusPending {
			return shared.NewDomainError("INVALID_STATE",
				"Only a pending payment can be settled")
		}

		payer, err := repos.Users().FindByID(ctx, payment.PayerID)
		if err != nil {
			return err
		}
		mentor, err := repos.Users().FindByID(ctx, payment.MentorID)
		if err != nil {
			return err
		}

		if payer.Balance.LessThan(payment.Amount) {
			if err := payment.MarkFailed(); err != nil {
				return err
			}
			if err := repos.Payments().SaveWithLock(ctx, payment); err != nil {
				return err
			}
			view = NewPaymentView(payment)
			// Returning nil commits the failed status; the caller
			// still gets the domain error.
			settleErr = shared.ErrInsufficientBalance
			return nil
		}

		payerBefore := payer.Balance
		mentorBefore := mentor.Balance
		if err := payer.DeductBalance(payment.Amount); err != nil {
			return err
		}
		if err := mentor.AddBalance(payment.Amount); err != nil {
			return err
		}
		if err := repos.Users().SaveWithLock(ctx, payer); err != nil {
			return err
		}
		if err := repos.Users().SaveWithLock(ctx, mentor); err != nil {
			return err
		}

		if err := payment.MarkCompleted(); err != nil {
			return err
		}
		if err := repos.Payments().SaveWithLock(ctx, payment); err != nil {
			return err
		}

		debit := billing.NewDebitTransaction(payer.ID, payment.Amount, payerBefore, payer.Balance).WithPayment(payment.ID)
		credit := billing.NewCreditTransaction(mentor.ID, payment.Amount, mentorBefore, mentor.Balance).WithPayment(payment.ID)
		if err := repos.Ledger().Save(ctx, debit); err != nil {
			return err
		}
		if err := repos.Ledger().Save(ctx, credit); err != nil {
			return err
		}

		view = NewPaymentView(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if settleErr != nil {
		s.logger.Warn("Settlement rejected, insufficient balance",
			zap.String("payment_id", id.String()))
		return nil, settleErr
	}

	s.logger.Info("Payment settled", zap.String("payment_id", id.String()))
	return view, nil
}

// ListByPayer returns payments created by the given payer.
func (s *PaymentService) ListByPayer(ctx context.Context, payerID uuid.UUID, filter shared.Filter) (*shared.Paginated[PaymentView], error) {
	payments, total, err := s.paymentRepo.FindByPayer(ctx, payerID, filter)
	if err != nil {
		return nil, err
	}
	views := make([]PaymentView, len(payments))
	for i := range payments {
		views[i] = *NewPaymentView(&payments[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListTransactions returns the balance movement history for one user.
func (s *PaymentService) ListTransactions(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[TransactionView], error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	entries, total, err := s.ledgerRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	views := make([]TransactionView, len(entries))
	for i := range entries {
		views[i] = *NewTransactionView(&entries[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

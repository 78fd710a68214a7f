package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/persistence/models"
)

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPayer lists payments made by a user
func (r *GormPaymentRepository) FindByPayer(ctx context.Context, payerID uuid.UUID, filter shared.Filter) ([]billing.Payment, int64, error) {
	return r.findBy(ctx, "payer_id = ?", payerID, filter)
}

// FindByMentor lists payments received by a mentor
func (r *GormPaymentRepository) FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]billing.Payment, int64, error) {
	return r.findBy(ctx, "mentor_id = ?", mentorID, filter)
}

func (r *GormPaymentRepository) findBy(ctx context.Context, cond string, id uuid.UUID, filter shared.Filter) ([]billing.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Where(cond, id)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paymentModels []models.PaymentModel
	if err := applyPagination(query, filter).Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]billing.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a payment with optimistic locking
func (r *GormPaymentRepository) SaveWithLock(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", payment.ID, payment.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The payment record has been modified by another transaction")
	}
	return nil
}

// GormBalanceTransactionRepository implements
// billing.BalanceTransactionRepository using GORM
type GormBalanceTransactionRepository struct {
	db *gorm.DB
}

// NewGormBalanceTransactionRepository creates a new repository
func NewGormBalanceTransactionRepository(db *gorm.DB) *GormBalanceTransactionRepository {
	return &GormBalanceTransactionRepository{db: db}
}

var _ billing.BalanceTransactionRepository = (*GormBalanceTransactionRepository)(nil)

// Save appends a balance transaction record. Records are never updated.
func (r *GormBalanceTransactionRepository) Save(ctx context.Context, tx *billing.BalanceTransaction) error {
	model := models.BalanceTransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByUser lists a user's balance movements, newest first
func (r *GormBalanceTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]billing.BalanceTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BalanceTransactionModel{}).Where("user_id = ?", userID)
	if txType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", txType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.BalanceTransactionModel
	if err := applyPagination(query, filter).Find(&txModels).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]billing.BalanceTransaction, len(txModels))
	for i, model := range txModels {
		txs[i] = *model.ToDomain()
	}
	return txs, total, nil
}

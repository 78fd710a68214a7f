package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/billing"
)

// PaymentModel is the persistence model for payments.
type PaymentModel struct {
	AggregateModel
	PayerID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	MentorID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	SessionID *uuid.UUID            `gorm:"type:uuid;index"`
	Amount    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status    billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PayerID:           m.PayerID,
		MentorID:          m.MentorID,
		SessionID:         m.SessionID,
		Amount:            m.Amount,
		Status:            m.Status,
	}
}

// PaymentModelFromDomain creates a persistence model from a domain Payment.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.PayerID = p.PayerID
	m.MentorID = p.MentorID
	m.SessionID = p.SessionID
	m.Amount = p.Amount
	m.Status = p.Status
	return m
}

// BalanceTransactionModel is the append-only persistence model for balance
// movements.
type BalanceTransactionModel struct {
	BaseModel
	UserID        uuid.UUID                      `gorm:"type:uuid;not null;index"`
	PaymentID     *uuid.UUID                     `gorm:"type:uuid;index"`
	Type          billing.BalanceTransactionType `gorm:"type:varchar(20);not null;index"`
	Amount        decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	BalanceBefore decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	BalanceAfter  decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	Description   string                         `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (BalanceTransactionModel) TableName() string {
	return "balance_transactions"
}

// ToDomain converts the persistence model to a domain BalanceTransaction.
func (m *BalanceTransactionModel) ToDomain() *billing.BalanceTransaction {
	return &billing.BalanceTransaction{
		BaseEntity:    m.BaseModel.ToDomain(),
		UserID:        m.UserID,
		PaymentID:     m.PaymentID,
		Type:          m.Type,
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		Description:   m.Description,
	}
}

// BalanceTransactionModelFromDomain creates a persistence model from a
// domain BalanceTransaction.
func BalanceTransactionModelFromDomain(t *billing.BalanceTransaction) *BalanceTransactionModel {
	m := &BalanceTransactionModel{}
	m.FromDomainBaseEntity(t.BaseEntity)
	m.UserID = t.UserID
	m.PaymentID = t.PaymentID
	m.Type = t.Type
	m.Amount = t.Amount
	m.BalanceBefore = t.BalanceBefore
	m.BalanceAfter = t.BalanceAfter
	m.Description = t.Description
	return m
}

// AllModels lists every persistence model for schema auto-migration.
func AllModels() []any {
	return []any{
		&UserModel{},
		&PasswordResetTokenModel{},
		&SkillModel{},
		&UserSkillModel{},
		&MentorshipRequestModel{},
		&SessionModel{},
		&ReviewModel{},
		&PaymentModel{},
		&BalanceTransactionModel{},
	}
}

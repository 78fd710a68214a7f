package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Name           string          `gorm:"type:varchar(100);not null"`
	Email          string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string          `gorm:"type:varchar(255);not null"`
	Bio            string          `gorm:"type:text"`
	ProfilePicture string          `gorm:"type:varchar(500)"`
	Balance        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsMentor       bool            `gorm:"not null;default:false;index"`
	HourlyRate     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Bio:               m.Bio,
		ProfilePicture:    m.ProfilePicture,
		Balance:           m.Balance,
		IsMentor:          m.IsMentor,
		HourlyRate:        m.HourlyRate,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Bio = u.Bio
	m.ProfilePicture = u.ProfilePicture
	m.Balance = u.Balance
	m.IsMentor = u.IsMentor
	m.HourlyRate = u.HourlyRate
}

// UserModelFromDomain creates a new persistence model from a domain User.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// PasswordResetTokenModel is the persistence model for reset tokens.
type PasswordResetTokenModel struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// ToDomain converts the persistence model to a domain token.
func (m *PasswordResetTokenModel) ToDomain() *identity.PasswordResetToken {
	return &identity.PasswordResetToken{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Token:      m.Token,
		ExpiresAt:  m.ExpiresAt,
	}
}

// PasswordResetTokenModelFromDomain creates a persistence model from a
// domain token.
func PasswordResetTokenModelFromDomain(t *identity.PasswordResetToken) *PasswordResetTokenModel {
	m := &PasswordResetTokenModel{}
	m.FromDomainBaseEntity(t.BaseEntity)
	m.UserID = t.UserID
	m.Token = t.Token
	m.ExpiresAt = t.ExpiresAt
	return m
}

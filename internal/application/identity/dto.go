package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/identity"
)

// LoginInput contains credentials for login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the outcome of a successful login
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	UserID      uuid.UUID
}

// RegisterInput contains data to create an account
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
	IsMentor bool
}

// UpdateProfileInput contains mutable profile fields
type UpdateProfileInput struct {
	Name           string
	Bio            string
	ProfilePicture string
	HourlyRate     *decimal.Decimal
}

// UserView is the read model returned to callers
type UserView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Bio            string          `json:"bio"`
	ProfilePicture string          `json:"profilePicture"`
	Balance        decimal.Decimal `json:"balance"`
	IsMentor       bool            `json:"isMentor"`
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewUserView builds a read model from the domain user
func NewUserView(u *identity.User) *UserView {
	return &UserView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Balance:        u.Balance,
		IsMentor:       u.IsMentor,
		HourlyRate:     u.HourlyRate,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

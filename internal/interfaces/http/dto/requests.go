package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoginRequest carries login credentials. Field presence is validated by the
// auth service so missing credentials produce its message, not a binding one.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// RegisterRequest carries the fields for account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Bio      string `json:"bio" binding:"omitempty,max=1000"`
	IsMentor bool   `json:"isMentor"`
}

// UpdateProfileRequest carries mutable profile fields
type UpdateProfileRequest struct {
	Name           string           `json:"name" binding:"required,max=100"`
	Bio            string           `json:"bio" binding:"omitempty,max=1000"`
	ProfilePicture string           `json:"profilePicture" binding:"omitempty,url"`
	HourlyRate     *decimal.Decimal `json:"hourlyRate"`
}

// SetBalanceRequest carries the new balance. The pointer distinguishes an
// omitted balance from an explicit zero.
type SetBalanceRequest struct {
	Balance *decimal.Decimal `json:"balance"`
}

// BalanceResponse is the body returned after a balance change
type BalanceResponse struct {
	ID      uuid.UUID       `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// PasswordResetRequest asks for a reset token by email
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetConfirmRequest redeems a reset token
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// CreateSkillRequest carries the fields for a new catalog skill
type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category" binding:"omitempty,max=100"`
}

// UpdateSkillRequest carries the fields for a skill update
type UpdateSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category" binding:"omitempty,max=100"`
}

// AddUserSkillRequest links a catalog skill to a profile
type AddUserSkillRequest struct {
	SkillID uuid.UUID `json:"skillId" binding:"required"`
}

// CreateMentorshipRequest opens a request to a mentor
type CreateMentorshipRequest struct {
	MentorID uuid.UUID `json:"mentorId" binding:"required"`
	SkillID  uuid.UUID `json:"skillId" binding:"required"`
	Message  string    `json:"message" binding:"omitempty,max=2000"`
}

// CreateSessionRequest schedules a session from an accepted request
type CreateSessionRequest struct {
	RequestID   uuid.UUID       `json:"requestId" binding:"required"`
	ScheduledAt time.Time       `json:"scheduledAt" binding:"required"`
	Duration    int             `json:"duration" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// CreateReviewRequest rates a completed session
type CreateReviewRequest struct {
	SessionID uuid.UUID `json:"sessionId" binding:"required"`
	Rating    int       `json:"rating" binding:"required"`
	Comment   string    `json:"comment" binding:"omitempty,max=2000"`
}

// CreatePaymentRequest opens a pending payment
type CreatePaymentRequest struct {
	MentorID  uuid.UUID       `json:"mentorId" binding:"required"`
	SessionID *uuid.UUID      `json:"sessionId"`
	Amount    decimal.Decimal `json:"amount"`
}

// UpdatePaymentStatusRequest moves a payment along its state machine
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

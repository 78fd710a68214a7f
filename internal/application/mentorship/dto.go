package mentorship

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/mentorship"
)

// CreateRequestInput carries the fields for a new mentorship request
type CreateRequestInput struct {
	LearnerID uuid.UUID
	MentorID  uuid.UUID
	SkillID   uuid.UUID
	Message   string
}

// RequestView is the read model for a mentorship request
type RequestView struct {
	ID        uuid.UUID `json:"id"`
	LearnerID uuid.UUID `json:"learnerId"`
	MentorID  uuid.UUID `json:"mentorId"`
	SkillID   uuid.UUID `json:"skillId"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRequestView builds the read model from the aggregate
func NewRequestView(r *mentorship.Request) *RequestView {
	return &RequestView{
		ID:        r.ID,
		LearnerID: r.LearnerID,
		MentorID:  r.MentorID,
		SkillID:   r.SkillID,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateSessionInput carries the fields for scheduling a session
type CreateSessionInput struct {
	RequestID   uuid.UUID
	ScheduledAt time.Time
	Duration    int
	Price       decimal.Decimal
}

// SessionView is the read model for a session
type SessionView struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"requestId"`
	MentorID    uuid.UUID `json:"mentorId"`
	LearnerID   uuid.UUID `json:"learnerId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Duration    int       `json:"duration"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSessionView builds the read model from the aggregate
func NewSessionView(s *mentorship.Session) *SessionView {
	return &SessionView{
		ID:          s.ID,
		RequestID:   s.RequestID,
		MentorID:    s.MentorID,
		LearnerID:   s.LearnerID,
		ScheduledAt: s.ScheduledAt,
		Duration:    s.Duration,
		Price:       s.Price.String(),
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// CreateReviewInput carries the fields for a new review
type CreateReviewInput struct {
	SessionID  uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
}

// ReviewView is the read model for a review
type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"sessionId"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	MentorID   uuid.UUID `json:"mentorId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewReviewView builds the read model from the entity
func NewReviewView(r *mentorship.Review) *ReviewView {
	return &ReviewView{
		ID:         r.ID,
		SessionID:  r.SessionID,
		ReviewerID: r.ReviewerID,
		MentorID:   r.MentorID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// MentorRatingView summarizes a mentor's reviews
type MentorRatingView struct {
	MentorID      uuid.UUID `json:"mentorId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int64     `json:"reviewCount"`
}

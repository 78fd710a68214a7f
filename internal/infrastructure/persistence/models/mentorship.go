package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/mentorship"
)

// MentorshipRequestModel is the persistence model for mentorship requests.
type MentorshipRequestModel struct {
	AggregateModel
	LearnerID uuid.UUID                `gorm:"type:uuid;not null;index"`
	MentorID  uuid.UUID                `gorm:"type:uuid;not null;index"`
	SkillID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	Message   string                   `gorm:"type:text"`
	Status    mentorship.RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (MentorshipRequestModel) TableName() string {
	return "mentorship_requests"
}

// ToDomain converts the persistence model to a domain Request.
func (m *MentorshipRequestModel) ToDomain() *mentorship.Request {
	return &mentorship.Request{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		LearnerID:         m.LearnerID,
		MentorID:          m.MentorID,
		SkillID:           m.SkillID,
		Message:           m.Message,
		Status:            m.Status,
	}
}

// MentorshipRequestModelFromDomain creates a persistence model from a domain Request.
func MentorshipRequestModelFromDomain(r *mentorship.Request) *MentorshipRequestModel {
	m := &MentorshipRequestModel{}
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.LearnerID = r.LearnerID
	m.MentorID = r.MentorID
	m.SkillID = r.SkillID
	m.Message = r.Message
	m.Status = r.Status
	return m
}

// SessionModel is the persistence model for sessions.
type SessionModel struct {
	AggregateModel
	RequestID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	MentorID    uuid.UUID                `gorm:"type:uuid;not null;index"`
	LearnerID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time                `gorm:"not null;index"`
	Duration    int                      `gorm:"not null"`
	Price       decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Status      mentorship.SessionStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`
}

// TableName returns the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts the persistence model to a domain Session.
func (m *SessionModel) ToDomain() *mentorship.Session {
	return &mentorship.Session{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		RequestID:         m.RequestID,
		MentorID:          m.MentorID,
		LearnerID:         m.LearnerID,
		ScheduledAt:       m.ScheduledAt,
		Duration:          m.Duration,
		Price:             m.Price,
		Status:            m.Status,
	}
}

// SessionModelFromDomain creates a persistence model from a domain Session.
func SessionModelFromDomain(s *mentorship.Session) *SessionModel {
	m := &SessionModel{}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.RequestID = s.RequestID
	m.MentorID = s.MentorID
	m.LearnerID = s.LearnerID
	m.ScheduledAt = s.ScheduledAt
	m.Duration = s.Duration
	m.Price = s.Price
	m.Status = s.Status
	return m
}

// ReviewModel is the persistence model for reviews.
type ReviewModel struct {
	BaseModel
	SessionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_reviewer"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_reviewer"`
	MentorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
func (m *ReviewModel) ToDomain() *mentorship.Review {
	return &mentorship.Review{
		BaseEntity: m.BaseModel.ToDomain(),
		SessionID:  m.SessionID,
		ReviewerID: m.ReviewerID,
		MentorID:   m.MentorID,
		Rating:     m.Rating,
		Comment:    m.Comment,
	}
}

// ReviewModelFromDomain creates a persistence model from a domain Review.
func ReviewModelFromDomain(r *mentorship.Review) *ReviewModel {
	m := &ReviewModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.SessionID = r.SessionID
	m.ReviewerID = r.ReviewerID
	m.MentorID = r.MentorID
	m.Rating = r.Rating
	m.Comment = r.Comment
	return m
}

package mentorship

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/shared"
)

// SessionStatus is the lifecycle state of a scheduled session
type SessionStatus string

// Session states
const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCanceled  SessionStatus = "CANCELED"
)

const (
	minSessionMinutes = 15
	maxSessionMinutes = 8 * 60
)

var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionStatusScheduled: {SessionStatusCompleted, SessionStatusCanceled},
	SessionStatusCompleted: {},
	SessionStatusCanceled:  {},
}

// IsValid reports whether the status is a known value
func (s SessionStatus) IsValid() bool {
	_, ok := sessionTransitions[s]
	return ok
}

// CanTransitionTo reports whether the transition is allowed
func (s SessionStatus) CanTransitionTo(target SessionStatus) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Session is a scheduled, priced mentorship meeting created from an accepted
// request.
type Session struct {
	shared.BaseAggregateRoot
	RequestID   uuid.UUID
	MentorID    uuid.UUID
	LearnerID   uuid.UUID
	ScheduledAt time.Time
	Duration    int // minutes
	Price       decimal.Decimal
	Status      SessionStatus
}

// NewSession schedules a session.
func NewSession(requestID, mentorID, learnerID uuid.UUID, scheduledAt time.Time, durationMinutes int, price decimal.Decimal) (*Session, error) {
	if requestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Request ID cannot be empty")
	}
	if mentorID == uuid.Nil || learnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTICIPANT", "Mentor and learner IDs cannot be empty")
	}
	if scheduledAt.Before(time.Now()) {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Session cannot be scheduled in the past")
	}
	if durationMinutes < minSessionMinutes || durationMinutes > maxSessionMinutes {
		return nil, shared.NewDomainError("INVALID_DURATION",
			fmt.Sprintf("Duration must be between %d and %d minutes", minSessionMinutes, maxSessionMinutes))
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Session price cannot be negative")
	}
	return &Session{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequestID:         requestID,
		MentorID:          mentorID,
		LearnerID:         learnerID,
		ScheduledAt:       scheduledAt,
		Duration:          durationMinutes,
		Price:             price,
		Status:            SessionStatusScheduled,
	}, nil
}

// TransitionTo moves the session to a new state, rejecting illegal moves.
func (s *Session) TransitionTo(target SessionStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown session status: %s", target))
	}
	if !s.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition session from %s to %s", s.Status, target))
	}
	s.Status = target
	s.IncrementVersion()
	s.Touch()
	return nil
}

// Complete marks the session held.
func (s *Session) Complete() error { return s.TransitionTo(SessionStatusCompleted) }

// Cancel marks the session canceled.
func (s *Session) Cancel() error { return s.TransitionTo(SessionStatusCanceled) }

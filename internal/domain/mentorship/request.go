package mentorship

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// RequestStatus is the lifecycle state of a mentorship request
type RequestStatus string

// Mentorship request states
const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
	RequestStatusCanceled RequestStatus = "CANCELED"
)

const maxRequestMessageLength = 1000

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusAccepted, RequestStatusRejected, RequestStatusCanceled},
	RequestStatusAccepted: {},
	RequestStatusRejected: {},
	RequestStatusCanceled: {},
}

// IsValid reports whether the status is a known value
func (s RequestStatus) IsValid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// CanTransitionTo reports whether the transition is allowed
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Request is a learner's ask for mentorship on a skill. Only pending
// requests can move; accepted, rejected, and canceled are terminal.
type Request struct {
	shared.BaseAggregateRoot
	LearnerID uuid.UUID
	MentorID  uuid.UUID
	SkillID   uuid.UUID
	Message   string
	Status    RequestStatus
}

// NewRequest creates a pending mentorship request.
func NewRequest(learnerID, mentorID, skillID uuid.UUID, message string) (*Request, error) {
	if learnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEARNER", "Learner ID cannot be empty")
	}
	if mentorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENTOR", "Mentor ID cannot be empty")
	}
	if learnerID == mentorID {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Learner and mentor cannot be the same user")
	}
	if skillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SKILL", "Skill ID cannot be empty")
	}
	if len(message) > maxRequestMessageLength {
		return nil, shared.NewDomainError("INVALID_MESSAGE", fmt.Sprintf("Message cannot exceed %d characters", maxRequestMessageLength))
	}
	return &Request{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LearnerID:         learnerID,
		MentorID:          mentorID,
		SkillID:           skillID,
		Message:           message,
		Status:            RequestStatusPending,
	}, nil
}

// TransitionTo moves the request to a new state, rejecting illegal moves.
func (r *Request) TransitionTo(target RequestStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown request status: %s", target))
	}
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition request from %s to %s", r.Status, target))
	}
	r.Status = target
	r.IncrementVersion()
	r.Touch()
	return nil
}

// Accept marks the request accepted by the mentor.
func (r *Request) Accept() error { return r.TransitionTo(RequestStatusAccepted) }

// Reject marks the request rejected by the mentor.
func (r *Request) Reject() error { return r.TransitionTo(RequestStatusRejected) }

// Cancel marks the request canceled by the learner.
func (r *Request) Cancel() error { return r.TransitionTo(RequestStatusCanceled) }

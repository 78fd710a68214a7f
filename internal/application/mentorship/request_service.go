package mentorship

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/catalog"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/mentorship"
	"github.com/skillswap/backend/internal/domain/shared"
)

// RequestService handles the mentorship request lifecycle
type RequestService struct {
	requestRepo mentorship.RequestRepository
	userRepo    identity.UserRepository
	skillRepo   catalog.SkillRepository
	logger      *zap.Logger
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo mentorship.RequestRepository,
	userRepo identity.UserRepository,
	skillRepo catalog.SkillRepository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		logger:      logger,
	}
}

// Create opens a pending request from a learner to a mentor for a skill.
func (s *RequestService) Create(ctx context.Context, input CreateRequestInput) (*RequestView, error) {
	if _, err := s.userRepo.FindByID(ctx, input.LearnerID); err != nil {
		return nil, err
	}
	mentor, err := s.userRepo.FindByID(ctx, input.MentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsMentor {
		return nil, shared.NewDomainError("NOT_A_MENTOR", "Requested user is not a mentor")
	}
	if _, err := s.skillRepo.FindByID(ctx, input.SkillID); err != nil {
		return nil, err
	}

	request, err := mentorship.NewRequest(input.LearnerID, input.MentorID, input.SkillID, input.Message)
	if err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("Mentorship request created",
		zap.String("request_id", request.ID.String()),
		zap.String("mentor_id", input.MentorID.String()))
	return NewRequestView(request), nil
}

// Get returns a request by ID.
func (s *RequestService) Get(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewRequestView(request), nil
}

// Accept moves a pending request to accepted. Only the addressed mentor may
// accept.
func (s *RequestService) Accept(ctx context.Context, id, actorID uuid.UUID) (*RequestView, error) {
	return s.transition(ctx, id, actorID, (*mentorship.Request).Accept, func(r *mentorship.Request) uuid.UUID {
		return r.MentorID
	})
}

// Reject moves a pending request to rejected. Only the addressed mentor may
// reject.
func (s *RequestService) Reject(ctx context.Context, id, actorID uuid.UUID) (*RequestView, error) {
	return s.transition(ctx, id, actorID, (*mentorship.Request).Reject, func(r *mentorship.Request) uuid.UUID {
		return r.MentorID
	})
}

// Cancel moves a pending request to canceled. Only the learner who opened it
// may cancel.
func (s *RequestService) Cancel(ctx context.Context, id, actorID uuid.UUID) (*RequestView, error) {
	return s.transition(ctx, id, actorID, (*mentorship.Request).Cancel, func(r *mentorship.Request) uuid.UUID {
		return r.LearnerID
	})
}

func (s *RequestService) transition(
	ctx context.Context,
	id, actorID uuid.UUID,
	move func(*mentorship.Request) error,
	allowed func(*mentorship.Request) uuid.UUID,
) (*RequestView, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if allowed(request) != actorID {
		return nil, shared.ErrForbidden
	}
	if err := move(request); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("Mentorship request moved",
		zap.String("request_id", request.ID.String()),
		zap.String("status", string(request.Status)))
	return NewRequestView(request), nil
}

// ListByLearner returns requests opened by the given learner.
func (s *RequestService) ListByLearner(ctx context.Context, learnerID uuid.UUID, filter shared.Filter) (*shared.Paginated[RequestView], error) {
	requests, total, err := s.requestRepo.FindByLearner(ctx, learnerID, filter)
	if err != nil {
		return nil, err
	}
	return paginateRequests(requests, total, filter), nil
}

// ListByMentor returns requests addressed to the given mentor.
func (s *RequestService) ListByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) (*shared.Paginated[RequestView], error) {
	requests, total, err := s.requestRepo.FindByMentor(ctx, mentorID, filter)
	if err != nil {
		return nil, err
	}
	return paginateRequests(requests, total, filter), nil
}

func paginateRequests(requests []mentorship.Request, total int64, filter shared.Filter) *shared.Paginated[RequestView] {
	views := make([]RequestView, len(requests))
	for i := range requests {
		views[i] = *NewRequestView(&requests[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result
}

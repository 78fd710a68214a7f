package mentorship

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/mentorship"
	"github.com/skillswap/backend/internal/domain/shared"
)

// SessionService handles scheduling and completing sessions
type SessionService struct {
	sessionRepo mentorship.SessionRepository
	requestRepo mentorship.RequestRepository
	logger      *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo mentorship.SessionRepository,
	requestRepo mentorship.RequestRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Create schedules a session from an accepted request. The mentor owns
// scheduling.
func (s *SessionService) Create(ctx context.Context, actorID uuid.UUID, input CreateSessionInput) (*SessionView, error) {
	request, err := s.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Status != mentorship.RequestStatusAccepted {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Sessions can only be scheduled from an accepted request")
	}
	if request.MentorID != actorID {
		return nil, shared.ErrForbidden
	}

	session, err := mentorship.NewSession(
		request.ID, request.MentorID, request.LearnerID,
		input.ScheduledAt, input.Duration, input.Price)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Session scheduled",
		zap.String("session_id", session.ID.String()),
		zap.Time("scheduled_at", session.ScheduledAt))
	return NewSessionView(session), nil
}

// Get returns a session by ID.
func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSessionView(session), nil
}

// Complete marks a scheduled session as held. Only the mentor completes.
func (s *SessionService) Complete(ctx context.Context, id, actorID uuid.UUID) (*SessionView, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.MentorID != actorID {
		return nil, shared.ErrForbidden
	}
	if err := session.Complete(); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Session completed", zap.String("session_id", session.ID.String()))
	return NewSessionView(session), nil
}

// Cancel calls off a scheduled session. Either participant may cancel.
func (s *SessionService) Cancel(ctx context.Context, id, actorID uuid.UUID) (*SessionView, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.MentorID != actorID && session.LearnerID != actorID {
		return nil, shared.ErrForbidden
	}
	if err := session.Cancel(); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Session canceled", zap.String("session_id", session.ID.String()))
	return NewSessionView(session), nil
}

// ListByParticipant returns sessions the user attends on either side.
func (s *SessionService) ListByParticipant(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[SessionView], error) {
	sessions, total, err := s.sessionRepo.FindByParticipant(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	views := make([]SessionView, len(sessions))
	for i := range sessions {
		views[i] = *NewSessionView(&sessions[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

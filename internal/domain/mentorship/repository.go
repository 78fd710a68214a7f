package mentorship

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// RequestRepository defines persistence for mentorship requests
type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	FindByLearner(ctx context.Context, learnerID uuid.UUID, filter shared.Filter) ([]Request, int64, error)
	FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]Request, int64, error)
	Save(ctx context.Context, request *Request) error
}

// SessionRepository defines persistence for sessions
type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Session, int64, error)
	Save(ctx context.Context, session *Session) error
}

// ReviewRepository defines persistence for reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]Review, int64, error)
	ExistsForSessionByReviewer(ctx context.Context, sessionID, reviewerID uuid.UUID) (bool, error)
	AverageRatingForMentor(ctx context.Context, mentorID uuid.UUID) (float64, error)
	Save(ctx context.Context, review *Review) error
}

package mentorship

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/mentorship"
	"github.com/skillswap/backend/internal/domain/shared"
)

// ReviewService handles learner reviews of completed sessions
type ReviewService struct {
	reviewRepo  mentorship.ReviewRepository
	sessionRepo mentorship.SessionRepository
	logger      *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo mentorship.ReviewRepository,
	sessionRepo mentorship.SessionRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Create records a review of a completed session. The reviewer must be the
// session's learner and can review each session once.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*ReviewView, error) {
	session, err := s.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.LearnerID != input.ReviewerID {
		return nil, shared.ErrForbidden
	}
	if session.Status != mentorship.SessionStatusCompleted {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Only completed sessions can be reviewed")
	}

	exists, err := s.reviewRepo.ExistsForSessionByReviewer(ctx, input.SessionID, input.ReviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("REVIEW_EXISTS", "This session has already been reviewed")
	}

	review, err := mentorship.NewReview(
		input.SessionID, input.ReviewerID, session.MentorID,
		input.Rating, input.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("Review recorded",
		zap.String("review_id", review.ID.String()),
		zap.Int("rating", review.Rating))
	return NewReviewView(review), nil
}

// ListByMentor returns reviews of the given mentor.
func (s *ReviewService) ListByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) (*shared.Paginated[ReviewView], error) {
	reviews, total, err := s.reviewRepo.FindByMentor(ctx, mentorID, filter)
	if err != nil {
		return nil, err
	}
	views := make([]ReviewView, len(reviews))
	for i := range reviews {
		views[i] = *NewReviewView(&reviews[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

// MentorRating returns the average rating and review count for a mentor.
func (s *ReviewService) MentorRating(ctx context.Context, mentorID uuid.UUID) (*MentorRatingView, error) {
	avg, err := s.reviewRepo.AverageRatingForMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	_, total, err := s.reviewRepo.FindByMentor(ctx, mentorID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return &MentorRatingView{
		MentorID:      mentorID,
		AverageRating: avg,
		ReviewCount:   total,
	}, nil
}

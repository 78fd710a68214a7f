package mentorship

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

const (
	minRating            = 1
	maxRating            = 5
	maxReviewCommentLen  = 2000
)

// Review is a learner's rating of a completed session. One review per
// reviewer per session.
type Review struct {
	shared.BaseEntity
	SessionID  uuid.UUID
	ReviewerID uuid.UUID
	MentorID   uuid.UUID
	Rating     int
	Comment    string
}

// NewReview creates a review with a rating between 1 and 5.
func NewReview(sessionID, reviewerID, mentorID uuid.UUID, rating int, comment string) (*Review, error) {
	if sessionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session ID cannot be empty")
	}
	if reviewerID == uuid.Nil || mentorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTICIPANT", "Reviewer and mentor IDs cannot be empty")
	}
	if rating < minRating || rating > maxRating {
		return nil, shared.NewDomainError("INVALID_RATING",
			fmt.Sprintf("Rating must be between %d and %d", minRating, maxRating))
	}
	if len(comment) > maxReviewCommentLen {
		return nil, shared.NewDomainError("INVALID_COMMENT",
			fmt.Sprintf("Comment cannot exceed %d characters", maxReviewCommentLen))
	}
	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		SessionID:  sessionID,
		ReviewerID: reviewerID,
		MentorID:   mentorID,
		Rating:     rating,
		Comment:    comment,
	}, nil
}

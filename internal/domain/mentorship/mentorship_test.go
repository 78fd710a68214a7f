package mentorship

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/domain/shared"
)

func newPendingRequest(t *testing.T) *Request {
	t.Helper()
	r, err := NewRequest(uuid.New(), uuid.New(), uuid.New(), "Looking for Go mentoring")
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	r := newPendingRequest(t)
	assert.Equal(t, RequestStatusPending, r.Status)
}

func TestNewRequest_LearnerCannotBeMentor(t *testing.T) {
	id := uuid.New()
	_, err := NewRequest(id, id, uuid.New(), "")
	require.Error(t, err)
}

func TestRequest_Lifecycle(t *testing.T) {
	r := newPendingRequest(t)
	require.NoError(t, r.Accept())
	assert.Equal(t, RequestStatusAccepted, r.Status)

	// Accepted is terminal.
	err := r.Cancel()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	r = newPendingRequest(t)
	require.NoError(t, r.Reject())
	assert.Equal(t, RequestStatusRejected, r.Status)

	r = newPendingRequest(t)
	require.NoError(t, r.Cancel())
	assert.Equal(t, RequestStatusCanceled, r.Status)
}

func newScheduledSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(uuid.New(), uuid.New(), uuid.New(),
		time.Now().Add(48*time.Hour), 60, decimal.NewFromInt(40))
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newScheduledSession(t)
	assert.Equal(t, SessionStatusScheduled, s.Status)
	assert.Equal(t, 60, s.Duration)
}

func TestNewSession_Validation(t *testing.T) {
	requestID, mentorID, learnerID := uuid.New(), uuid.New(), uuid.New()
	future := time.Now().Add(24 * time.Hour)

	_, err := NewSession(requestID, mentorID, learnerID, time.Now().Add(-time.Hour), 60, decimal.NewFromInt(40))
	require.Error(t, err, "sessions cannot be scheduled in the past")

	_, err = NewSession(requestID, mentorID, learnerID, future, 5, decimal.NewFromInt(40))
	require.Error(t, err, "duration below the minimum")

	_, err = NewSession(requestID, mentorID, learnerID, future, 600, decimal.NewFromInt(40))
	require.Error(t, err, "duration above the maximum")

	_, err = NewSession(requestID, mentorID, learnerID, future, 60, decimal.NewFromInt(-1))
	require.Error(t, err, "negative price")

	// A free session is allowed.
	_, err = NewSession(requestID, mentorID, learnerID, future, 60, decimal.Zero)
	assert.NoError(t, err)
}

func TestSession_Lifecycle(t *testing.T) {
	s := newScheduledSession(t)
	require.NoError(t, s.Complete())
	assert.Equal(t, SessionStatusCompleted, s.Status)

	err := s.Cancel()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	s = newScheduledSession(t)
	require.NoError(t, s.Cancel())
	assert.Equal(t, SessionStatusCanceled, s.Status)
}

func TestNewReview(t *testing.T) {
	r, err := NewReview(uuid.New(), uuid.New(), uuid.New(), 5, "Great session")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
}

func TestNewReview_RatingBounds(t *testing.T) {
	sessionID, reviewerID, mentorID := uuid.New(), uuid.New(), uuid.New()

	for _, rating := range []int{0, 6, -1} {
		_, err := NewReview(sessionID, reviewerID, mentorID, rating, "")
		require.Error(t, err, "rating %d must be rejected", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		_, err := NewReview(sessionID, reviewerID, mentorID, rating, "")
		require.NoError(t, err)
	}
}

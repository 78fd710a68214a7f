package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appmentorship "github.com/skillswap/backend/internal/application/mentorship"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
)

// MentorshipHandler serves mentorship request, session, and review endpoints
type MentorshipHandler struct {
	BaseHandler
	requestService *appmentorship.RequestService
	sessionService *appmentorship.SessionService
	reviewService  *appmentorship.ReviewService
}

// NewMentorshipHandler creates a new mentorship handler
func NewMentorshipHandler(
	requestService *appmentorship.RequestService,
	sessionService *appmentorship.SessionService,
	reviewService *appmentorship.ReviewService,
) *MentorshipHandler {
	return &MentorshipHandler{
		requestService: requestService,
		sessionService: sessionService,
		reviewService:  reviewService,
	}
}

// CreateRequest handles POST /mentorship-requests
func (h *MentorshipHandler) CreateRequest(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateMentorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid request payload")
		return
	}

	view, err := h.requestService.Create(c.Request.Context(), appmentorship.CreateRequestInput{
		LearnerID: actorID,
		MentorID:  req.MentorID,
		SkillID:   req.SkillID,
		Message:   req.Message,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// GetRequest handles GET /mentorship-requests/:id
func (h *MentorshipHandler) GetRequest(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}
	view, err := h.requestService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// AcceptRequest handles POST /mentorship-requests/:id/accept
func (h *MentorshipHandler) AcceptRequest(c *gin.Context) {
	h.moveRequest(c, h.requestService.Accept)
}

// RejectRequest handles POST /mentorship-requests/:id/reject
func (h *MentorshipHandler) RejectRequest(c *gin.Context) {
	h.moveRequest(c, h.requestService.Reject)
}

// CancelRequest handles POST /mentorship-requests/:id/cancel
func (h *MentorshipHandler) CancelRequest(c *gin.Context) {
	h.moveRequest(c, h.requestService.Cancel)
}

func (h *MentorshipHandler) moveRequest(
	c *gin.Context,
	move func(ctx context.Context, id, actorID uuid.UUID) (*appmentorship.RequestView, error),
) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	view, err := move(c.Request.Context(), id, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// ListMyRequests handles GET /mentorship-requests. The role query parameter
// selects the learner or mentor side; learner is the default.
func (h *MentorshipHandler) ListMyRequests(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}

	var page *shared.Paginated[appmentorship.RequestView]
	if c.Query("role") == "mentor" {
		page, err = h.requestService.ListByMentor(c.Request.Context(), actorID, req.ToFilter())
	} else {
		page, err = h.requestService.ListByLearner(c.Request.Context(), actorID, req.ToFilter())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// CreateSession handles POST /sessions
func (h *MentorshipHandler) CreateSession(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid session payload")
		return
	}

	view, err := h.sessionService.Create(c.Request.Context(), actorID, appmentorship.CreateSessionInput{
		RequestID:   req.RequestID,
		ScheduledAt: req.ScheduledAt,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// GetSession handles GET /sessions/:id
func (h *MentorshipHandler) GetSession(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}
	view, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// CompleteSession handles POST /sessions/:id/complete
func (h *MentorshipHandler) CompleteSession(c *gin.Context) {
	h.moveSession(c, h.sessionService.Complete)
}

// CancelSession handles POST /sessions/:id/cancel
func (h *MentorshipHandler) CancelSession(c *gin.Context) {
	h.moveSession(c, h.sessionService.Cancel)
}

func (h *MentorshipHandler) moveSession(
	c *gin.Context,
	move func(ctx context.Context, id, actorID uuid.UUID) (*appmentorship.SessionView, error),
) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	view, err := move(c.Request.Context(), id, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// ListMySessions handles GET /sessions
func (h *MentorshipHandler) ListMySessions(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}

	page, err := h.sessionService.ListByParticipant(c.Request.Context(), actorID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// CreateReview handles POST /reviews
func (h *MentorshipHandler) CreateReview(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid review payload")
		return
	}

	view, err := h.reviewService.Create(c.Request.Context(), appmentorship.CreateReviewInput{
		SessionID:  req.SessionID,
		ReviewerID: actorID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// ListMentorReviews handles GET /mentors/:id/reviews
func (h *MentorshipHandler) ListMentorReviews(c *gin.Context) {
	mentorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mentor ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}

	page, err := h.reviewService.ListByMentor(c.Request.Context(), mentorID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// GetMentorRating handles GET /mentors/:id/rating
func (h *MentorshipHandler) GetMentorRating(c *gin.Context) {
	mentorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid mentor ID")
		return
	}
	view, err := h.reviewService.MentorRating(c.Request.Context(), mentorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	appcatalog "github.com/skillswap/backend/internal/application/catalog"
	appidentity "github.com/skillswap/backend/internal/application/identity"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
)

// UserHandler serves user account and profile endpoints
type UserHandler struct {
	BaseHandler
	userService    *appidentity.UserService
	skillService   *appcatalog.SkillService
	paymentService *appbilling.PaymentService
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userService *appidentity.UserService,
	skillService *appcatalog.SkillService,
	paymentService *appbilling.PaymentService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		skillService:   skillService,
		paymentService: paymentService,
	}
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	view, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// UpdateProfile handles PATCH /users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	actorID, err := getUserID(c)
	if err != nil || actorID != id {
		h.Error(c, http.StatusForbidden, "You can only update your own profile")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid profile payload")
		return
	}

	view, err := h.userService.UpdateProfile(c.Request.Context(), id, appidentity.UpdateProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SetBalance handles PATCH /users/:id/balance. A missing or negative balance
// is rejected before any write.
func (h *UserHandler) SetBalance(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid balance payload")
		return
	}
	if req.Balance == nil {
		h.BadRequest(c, "Balance is required")
		return
	}

	balance, err := h.userService.SetBalance(c.Request.Context(), id, *req.Balance)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.BalanceResponse{ID: id, Balance: balance})
}

// ListTransactions handles GET /users/:id/transactions
func (h *UserHandler) ListTransactions(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}

	page, err := h.paymentService.ListTransactions(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// ListMentors handles GET /mentors
func (h *UserHandler) ListMentors(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}

	page, err := h.userService.ListMentors(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// AddSkill handles POST /users/:id/skills
func (h *UserHandler) AddSkill(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	actorID, err := getUserID(c)
	if err != nil || actorID != id {
		h.Error(c, http.StatusForbidden, "You can only manage your own skills")
		return
	}

	var req dto.AddUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "A skill ID is required")
		return
	}

	if err := h.skillService.AddUserSkill(c.Request.Context(), id, req.SkillID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSkills handles GET /users/:id/skills
func (h *UserHandler) ListSkills(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	views, err := h.skillService.ListUserSkills(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// RemoveSkill handles DELETE /users/:id/skills/:skillId
func (h *UserHandler) RemoveSkill(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	skillID, err := parseIDParam(c, "skillId")
	if err != nil {
		h.BadRequest(c, "Invalid skill ID")
		return
	}
	actorID, err := getUserID(c)
	if err != nil || actorID != id {
		h.Error(c, http.StatusForbidden, "You can only manage your own skills")
		return
	}

	if err := h.skillService.RemoveUserSkill(c.Request.Context(), id, skillID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

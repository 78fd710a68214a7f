package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/skillswap/backend/internal/application/catalog"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
)

// SkillHandler serves the skill catalog endpoints
type SkillHandler struct {
	BaseHandler
	skillService *appcatalog.SkillService
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService *appcatalog.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// Create handles POST /skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid skill payload")
		return
	}

	view, err := h.skillService.Create(c.Request.Context(), appcatalog.CreateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Get handles GET /skills/:id
func (h *SkillHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid skill ID")
		return
	}
	view, err := h.skillService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// List handles GET /skills
func (h *SkillHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err, "Invalid list parameters")
		return
	}
	page, err := h.skillService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

// Update handles PUT /skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid skill ID")
		return
	}
	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "Invalid skill payload")
		return
	}

	view, err := h.skillService.Update(c.Request.Context(), id, appcatalog.UpdateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Delete handles DELETE /skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid skill ID")
		return
	}
	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
)

// PaymentHandler serves payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *appbilling.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *appbilling.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment payload")
		return
	}

	view, err := h.paymentService.Create(c.Request.Context(), appbilling.CreatePaymentInput{
		PayerID:   actorID,
		MentorID:  req.MentorID,
		SessionID: req.SessionID,
		Amount:    req.Amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}
	view, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// UpdateStatus handles PATCH /payments/:id/status
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err, "A target status is required")
		return
	}

	view, err := h.paymentService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Settle handles POST /payments/:id/settle
func (h *PaymentHandler) Settle(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}
	view, err := h.paymentService.Settle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// ListMine handles GET /payments, returning payments the caller created.
func (h *PaymentHandler) ListMine(c *gin.Context) {
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

	page, err := h.paymentService.ListByPayer(c.Request.Context(), actorID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewListResponse(page))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/interfaces/http/dto"
	"github.com/skillswap/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getUserID extracts the authenticated user's ID from JWT claims.
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// Success sends a 200 response with the given payload.
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the given payload.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error body with the given status.
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message, statusCode))
}

// BadRequest sends a 400 response.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// BindError sends a 400 response describing the failed bindings, falling
// back to the given message when the error is not a validation error.
func (h *BaseHandler) BindError(c *gin.Context, err error, fallback string) {
	h.BadRequest(c, middleware.ValidationMessage(err, fallback))
}

// NotFound sends a 404 response.
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// Unauthorized sends a 401 response.
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, message)
}

// HandleError translates a domain error into the uniform error body.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		h.Error(c, status, domainErr.Message)
		return
	}
	h.Error(c, http.StatusInternalServerError, "Internal server error")
}

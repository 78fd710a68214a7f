package dto

import (
	"github.com/skillswap/backend/internal/domain/shared"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(message string, statusCode int) ErrorResponse {
	return ErrorResponse{
		Message:    message,
		StatusCode: statusCode,
	}
}

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewListResponse builds a page wrapper from a paginated result
func NewListResponse[T any](p *shared.Paginated[T]) ListResponse[T] {
	return ListResponse[T]{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

// ListRequest carries common list/pagination query parameters
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// ToFilter converts the request into a repository filter, applying defaults.
func (r ListRequest) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if r.Page > 0 {
		filter.Page = r.Page
	}
	if r.PageSize > 0 {
		filter.PageSize = r.PageSize
	}
	if r.OrderBy != "" {
		filter.OrderBy = r.OrderBy
	}
	if r.OrderDir != "" {
		filter.OrderDir = r.OrderDir
	}
	filter.Search = r.Search
	return filter
}

package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/domain/shared"
)

// orderableColumns whitelists the columns usable in ORDER BY clauses.
// Anything else falls back to created_at to keep user input out of SQL.
var orderableColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"email":        true,
	"scheduled_at": true,
	"amount":       true,
	"rating":       true,
	"status":       true,
}

// applyPagination applies ordering and pagination from a filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := filter.OrderBy
	if !orderableColumns[orderBy] {
		orderBy = "created_at"
	}
	orderDir := "desc"
	if filter.OrderDir == "asc" {
		orderDir = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}

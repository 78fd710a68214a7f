package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/catalog"
)

// CreateSkillInput carries the fields for creating a skill
type CreateSkillInput struct {
	Name        string
	Description string
	Category    string
}

// UpdateSkillInput carries the fields for updating a skill
type UpdateSkillInput struct {
	Name        string
	Description string
	Category    string
}

// SkillView is the read model for a skill
type SkillView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSkillView builds the read model from the aggregate
func NewSkillView(s *catalog.Skill) *SkillView {
	return &SkillView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

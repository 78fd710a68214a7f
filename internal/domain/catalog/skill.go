package catalog

import (
	"fmt"
	"strings"

	"github.com/skillswap/backend/internal/domain/shared"
)

const (
	maxSkillNameLength        = 100
	maxSkillDescriptionLength = 1000
	maxSkillCategoryLength    = 50
)

// Skill is a teachable subject in the marketplace catalog. Names are unique
// across the catalog.
type Skill struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Category    string
}

// NewSkill creates a skill with a validated name.
func NewSkill(name, description, category string) (*Skill, error) {
	s := &Skill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}
	if err := s.Update(name, description, category); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the skill's describable fields.
func (s *Skill) Update(name, description, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SKILL_NAME", "Skill name cannot be empty")
	}
	if len(name) > maxSkillNameLength {
		return shared.NewDomainError("INVALID_SKILL_NAME", fmt.Sprintf("Skill name cannot exceed %d characters", maxSkillNameLength))
	}
	if len(description) > maxSkillDescriptionLength {
		return shared.NewDomainError("INVALID_SKILL_DESCRIPTION", fmt.Sprintf("Description cannot exceed %d characters", maxSkillDescriptionLength))
	}
	if len(category) > maxSkillCategoryLength {
		return shared.NewDomainError("INVALID_SKILL_CATEGORY", fmt.Sprintf("Category cannot exceed %d characters", maxSkillCategoryLength))
	}
	s.Name = name
	s.Description = description
	s.Category = category
	s.Touch()
	return nil
}

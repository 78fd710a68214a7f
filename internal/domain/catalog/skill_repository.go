package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// SkillRepository defines persistence operations for skills
type SkillRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	FindByName(ctx context.Context, name string) (*Skill, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Skill, int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserSkillRepository defines persistence for mentor-skill links
type UserSkillRepository interface {
	Save(ctx context.Context, link *UserSkill) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Exists(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, skillID uuid.UUID) error
}

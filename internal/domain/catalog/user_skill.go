package catalog

import (
	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// UserSkill links a mentor to a skill they offer. The (user, skill) pair is
// unique.
type UserSkill struct {
	shared.BaseEntity
	UserID  uuid.UUID
	SkillID uuid.UUID
}

// NewUserSkill creates a mentor-skill association.
func NewUserSkill(userID, skillID uuid.UUID) (*UserSkill, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if skillID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SKILL", "Skill ID cannot be empty")
	}
	return &UserSkill{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		SkillID:    skillID,
	}, nil
}

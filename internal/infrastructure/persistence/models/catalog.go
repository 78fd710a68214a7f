package models

import (
	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/catalog"
)

// SkillModel is the persistence model for the Skill domain entity.
type SkillModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(50);index"`
}

// TableName returns the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// ToDomain converts the persistence model to a domain Skill.
func (m *SkillModel) ToDomain() *catalog.Skill {
	return &catalog.Skill{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Category:          m.Category,
	}
}

// SkillModelFromDomain creates a persistence model from a domain Skill.
func SkillModelFromDomain(s *catalog.Skill) *SkillModel {
	m := &SkillModel{}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.Description = s.Description
	m.Category = s.Category
	return m
}

// UserSkillModel is the persistence model for mentor-skill links.
type UserSkillModel struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
	SkillID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
}

// TableName returns the table name for GORM
func (UserSkillModel) TableName() string {
	return "user_skills"
}

// ToDomain converts the persistence model to a domain UserSkill.
func (m *UserSkillModel) ToDomain() *catalog.UserSkill {
	return &catalog.UserSkill{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		SkillID:    m.SkillID,
	}
}

// UserSkillModelFromDomain creates a persistence model from a domain UserSkill.
func UserSkillModelFromDomain(l *catalog.UserSkill) *UserSkillModel {
	m := &UserSkillModel{}
	m.FromDomainBaseEntity(l.BaseEntity)
	m.UserID = l.UserID
	m.SkillID = l.SkillID
	return m
}

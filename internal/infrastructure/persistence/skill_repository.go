package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/domain/catalog"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/persistence/models"
)

// GormSkillRepository implements catalog.SkillRepository using GORM
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new GormSkillRepository
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

var _ catalog.SkillRepository = (*GormSkillRepository)(nil)

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Skill, error) {
	var model models.SkillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a skill by its unique name
func (r *GormSkillRepository) FindByName(ctx context.Context, name string) (*catalog.Skill, error) {
	var model models.SkillModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds skills matching the filter, paginated
func (r *GormSkillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Skill, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SkillModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skillModels []models.SkillModel
	if err := applyPagination(query, filter).Find(&skillModels).Error; err != nil {
		return nil, 0, err
	}

	skills := make([]catalog.Skill, len(skillModels))
	for i, model := range skillModels {
		skills[i] = *model.ToDomain()
	}
	return skills, total, nil
}

// ExistsByName reports whether a skill with the name exists
func (r *GormSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SkillModel{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// Save creates or updates a skill
func (r *GormSkillRepository) Save(ctx context.Context, skill *catalog.Skill) error {
	model := models.SkillModelFromDomain(skill)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a skill
func (r *GormSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SkillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormUserSkillRepository implements catalog.UserSkillRepository using GORM
type GormUserSkillRepository struct {
	db *gorm.DB
}

// NewGormUserSkillRepository creates a new GormUserSkillRepository
func NewGormUserSkillRepository(db *gorm.DB) *GormUserSkillRepository {
	return &GormUserSkillRepository{db: db}
}

var _ catalog.UserSkillRepository = (*GormUserSkillRepository)(nil)

// Save stores a mentor-skill link
func (r *GormUserSkillRepository) Save(ctx context.Context, link *catalog.UserSkill) error {
	model := models.UserSkillModelFromDomain(link)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByUser lists a mentor's skill links
func (r *GormUserSkillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]catalog.UserSkill, error) {
	var linkModels []models.UserSkillModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&linkModels).Error; err != nil {
		return nil, err
	}
	links := make([]catalog.UserSkill, len(linkModels))
	for i, model := range linkModels {
		links[i] = *model.ToDomain()
	}
	return links, nil
}

// Exists reports whether the link exists
func (r *GormUserSkillRepository) Exists(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserSkillModel{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the link
func (r *GormUserSkillRepository) Delete(ctx context.Context, userID, skillID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserSkillModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

var _ identity.UserRepository = (*GormUserRepository)(nil)

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email. Emails are stored lowercase so the
// lookup normalizes before matching.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindMentors finds users with the mentor flag set, paginated
func (r *GormUserRepository) FindMentors(ctx context.Context, filter shared.Filter) ([]identity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("is_mentor = ?", true)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR bio ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []models.UserModel
	if err := applyPagination(query, filter).Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]identity.User, len(userModels))
	for i, model := range userModels {
		users[i] = *model.ToDomain()
	}
	return users, total, nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a user with optimistic locking. The update applies only
// when the stored row still carries the previous version; zero rows
// affected means a concurrent writer got there first.
func (r *GormUserRepository) SaveWithLock(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", user.ID, user.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The user record has been modified by another transaction")
	}
	return nil
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPasswordResetTokenRepository implements
// identity.PasswordResetTokenRepository using GORM
type GormPasswordResetTokenRepository struct {
	db *gorm.DB
}

// NewGormPasswordResetTokenRepository creates a new repository
func NewGormPasswordResetTokenRepository(db *gorm.DB) *GormPasswordResetTokenRepository {
	return &GormPasswordResetTokenRepository{db: db}
}

var _ identity.PasswordResetTokenRepository = (*GormPasswordResetTokenRepository)(nil)

// Save stores a reset token
func (r *GormPasswordResetTokenRepository) Save(ctx context.Context, token *identity.PasswordResetToken) error {
	model := models.PasswordResetTokenModelFromDomain(token)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByToken finds a reset token by its opaque value
func (r *GormPasswordResetTokenRepository) FindByToken(ctx context.Context, token string) (*identity.PasswordResetToken, error) {
	var model models.PasswordResetTokenModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete consumes a reset token
func (r *GormPasswordResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PasswordResetTokenModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

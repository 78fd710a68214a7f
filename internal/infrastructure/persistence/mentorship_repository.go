package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/domain/mentorship"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/persistence/models"
)

// GormRequestRepository implements mentorship.RequestRepository using GORM
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

var _ mentorship.RequestRepository = (*GormRequestRepository)(nil)

// FindByID finds a request by ID
func (r *GormRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*mentorship.Request, error) {
	var model models.MentorshipRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLearner lists requests created by a learner
func (r *GormRequestRepository) FindByLearner(ctx context.Context, learnerID uuid.UUID, filter shared.Filter) ([]mentorship.Request, int64, error) {
	return r.findBy(ctx, "learner_id = ?", learnerID, filter)
}

// FindByMentor lists requests addressed to a mentor
func (r *GormRequestRepository) FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]mentorship.Request, int64, error) {
	return r.findBy(ctx, "mentor_id = ?", mentorID, filter)
}

func (r *GormRequestRepository) findBy(ctx context.Context, cond string, id uuid.UUID, filter shared.Filter) ([]mentorship.Request, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MentorshipRequestModel{}).Where(cond, id)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requestModels []models.MentorshipRequestModel
	if err := applyPagination(query, filter).Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]mentorship.Request, len(requestModels))
	for i, model := range requestModels {
		requests[i] = *model.ToDomain()
	}
	return requests, total, nil
}

// Save creates or updates a request
func (r *GormRequestRepository) Save(ctx context.Context, request *mentorship.Request) error {
	model := models.MentorshipRequestModelFromDomain(request)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormSessionRepository implements mentorship.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

var _ mentorship.SessionRepository = (*GormSessionRepository)(nil)

// FindByID finds a session by ID
func (r *GormSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*mentorship.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByParticipant lists sessions where the user is mentor or learner
func (r *GormSessionRepository) FindByParticipant(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]mentorship.Session, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("mentor_id = ? OR learner_id = ?", userID, userID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessionModels []models.SessionModel
	if err := applyPagination(query, filter).Find(&sessionModels).Error; err != nil {
		return nil, 0, err
	}

	sessions := make([]mentorship.Session, len(sessionModels))
	for i, model := range sessionModels {
		sessions[i] = *model.ToDomain()
	}
	return sessions, total, nil
}

// Save creates or updates a session
func (r *GormSessionRepository) Save(ctx context.Context, session *mentorship.Session) error {
	model := models.SessionModelFromDomain(session)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormReviewRepository implements mentorship.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

var _ mentorship.ReviewRepository = (*GormReviewRepository)(nil)

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*mentorship.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMentor lists reviews received by a mentor
func (r *GormReviewRepository) FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]mentorship.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ReviewModel{}).Where("mentor_id = ?", mentorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviewModels []models.ReviewModel
	if err := applyPagination(query, filter).Find(&reviewModels).Error; err != nil {
		return nil, 0, err
	}

	reviews := make([]mentorship.Review, len(reviewModels))
	for i, model := range reviewModels {
		reviews[i] = *model.ToDomain()
	}
	return reviews, total, nil
}

// ExistsForSessionByReviewer reports whether the reviewer already reviewed
// the session
func (r *GormReviewRepository) ExistsForSessionByReviewer(ctx context.Context, sessionID, reviewerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("session_id = ? AND reviewer_id = ?", sessionID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

// AverageRatingForMentor returns the mentor's mean rating, zero when the
// mentor has no reviews
func (r *GormReviewRepository) AverageRatingForMentor(ctx context.Context, mentorID uuid.UUID) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("mentor_id = ?", mentorID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// Save creates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *mentorship.Review) error {
	model := models.ReviewModelFromDomain(review)
	return r.db.WithContext(ctx).Save(model).Error
}

package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/catalog"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
)

// SkillService handles the skill catalog and mentor-skill links
type SkillService struct {
	skillRepo     catalog.SkillRepository
	userSkillRepo catalog.UserSkillRepository
	userRepo      identity.UserRepository
	logger        *zap.Logger
}

// NewSkillService creates a new skill service
func NewSkillService(
	skillRepo catalog.SkillRepository,
	userSkillRepo catalog.UserSkillRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *SkillService {
	return &SkillService{
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// Create adds a skill to the catalog. Skill names are unique.
func (s *SkillService) Create(ctx context.Context, input CreateSkillInput) (*SkillView, error) {
	exists, err := s.skillRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SKILL_EXISTS", "A skill with this name already exists")
	}

	skill, err := catalog.NewSkill(input.Name, input.Description, input.Category)
	if err != nil {
		return nil, err
	}
	if err := s.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}

	s.logger.Info("Skill created",
		zap.String("skill_id", skill.ID.String()),
		zap.String("name", skill.Name))
	return NewSkillView(skill), nil
}

// Get returns a skill by ID.
func (s *SkillService) Get(ctx context.Context, id uuid.UUID) (*SkillView, error) {
	skill, err := s.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSkillView(skill), nil
}

// List returns skills matching the filter.
func (s *SkillService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SkillView], error) {
	skills, total, err := s.skillRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]SkillView, len(skills))
	for i := range skills {
		views[i] = *NewSkillView(&skills[i])
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update replaces a skill's fields. Renaming onto an existing name is
// rejected.
func (s *SkillService) Update(ctx context.Context, id uuid.UUID, input UpdateSkillInput) (*SkillView, error) {
	skill, err := s.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != skill.Name {
		exists, err := s.skillRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("SKILL_EXISTS", "A skill with this name already exists")
		}
	}

	if err := skill.Update(input.Name, input.Description, input.Category); err != nil {
		return nil, err
	}
	if err := s.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}
	return NewSkillView(skill), nil
}

// Delete removes a skill from the catalog.
func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.skillRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.skillRepo.Delete(ctx, id)
}

// AddUserSkill links a skill to a mentor's profile.
func (s *SkillService) AddUserSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsMentor {
		return shared.NewDomainError("NOT_A_MENTOR", "Only mentors can list skills")
	}
	if _, err := s.skillRepo.FindByID(ctx, skillID); err != nil {
		return err
	}

	exists, err := s.userSkillRepo.Exists(ctx, userID, skillID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("SKILL_ALREADY_LINKED", "Skill is already on this profile")
	}

	link, err := catalog.NewUserSkill(userID, skillID)
	if err != nil {
		return err
	}
	return s.userSkillRepo.Save(ctx, link)
}

// ListUserSkills returns the skills linked to one user's profile.
func (s *SkillService) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]SkillView, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	links, err := s.userSkillRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]SkillView, 0, len(links))
	for i := range links {
		skill, err := s.skillRepo.FindByID(ctx, links[i].SkillID)
		if err != nil {
			return nil, err
		}
		views = append(views, *NewSkillView(skill))
	}
	return views, nil
}

// RemoveUserSkill unlinks a skill from a profile.
func (s *SkillService) RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	exists, err := s.userSkillRepo.Exists(ctx, userID, skillID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.userSkillRepo.Delete(ctx, userID, skillID)
}

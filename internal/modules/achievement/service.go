package achievement

import (
	"errors"
	"fmt"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrInvalidEnum marks icon/category values outside the fixed vocabulary.
var ErrInvalidEnum = errors.New("invalid enum value")

// Service handles achievement business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all published achievements ordered for display. The public
// card grid is small and fixed, so it is not paginated.
func (s *Service) List() ([]models.AchievementModel, error) {
	var achievements []models.AchievementModel
	err := s.db.Preload("AuthorUser").
		Where("is_published = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&achievements).Error
	return achievements, err
}

// AdminList returns all achievements regardless of publish state, paginated.
func (s *Service) AdminList(q pagination.Query) ([]models.AchievementModel, response.Pagination, error) {
	tx := s.db.Model(&models.AchievementModel{}).
		Preload("AuthorUser").
		Order("sort_order ASC, created_at DESC")

	var achievements []models.AchievementModel
	pag, err := pagination.Paginate(tx, q, &achievements)
	return achievements, pag, err
}

// GetByID fetches an achievement by ID.
func (s *Service) GetByID(id string) (*models.AchievementModel, error) {
	var achievement models.AchievementModel
	if err := s.db.Preload("AuthorUser").First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &achievement, nil
}

// Create inserts a new achievement. New cards start unpublished.
func (s *Service) Create(dto *CreateAchievementDTO, authorID string) (*models.AchievementModel, error) {
	achievement := models.AchievementModel{
		Title:       dto.Title,
		Description: dto.Description,
		Items:       dto.Items,
		Icon:        "award",
		Category:    "skills",
		AuthorID:    &authorID,
	}
	if dto.Icon != "" {
		if !validIcon(dto.Icon) {
			return nil, fmt.Errorf("%w: icon %q", ErrInvalidEnum, dto.Icon)
		}
		achievement.Icon = dto.Icon
	}
	if dto.Category != "" {
		if !validCategory(dto.Category) {
			return nil, fmt.Errorf("%w: category %q", ErrInvalidEnum, dto.Category)
		}
		achievement.Category = dto.Category
	}
	if dto.SortOrder != nil {
		achievement.SortOrder = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		achievement.IsPublished = *dto.IsPublished
	}

	if err := s.db.Create(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Update patches an achievement.
func (s *Service) Update(id string, dto *UpdateAchievementDTO) (*models.AchievementModel, error) {
	achievement, err := s.GetByID(id)
	if err != nil || achievement == nil {
		return achievement, err
	}

	updates := map[string]interface{}{}

	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Items != nil {
		updates["items"] = models.StringArray(*dto.Items)
	}
	if dto.Icon != nil {
		if !validIcon(*dto.Icon) {
			return nil, fmt.Errorf("%w: icon %q", ErrInvalidEnum, *dto.Icon)
		}
		updates["icon"] = *dto.Icon
	}
	if dto.Category != nil {
		if !validCategory(*dto.Category) {
			return nil, fmt.Errorf("%w: category %q", ErrInvalidEnum, *dto.Category)
		}
		updates["category"] = *dto.Category
	}
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
	}

	if len(updates) > 0 {
		if err := s.db.Model(achievement).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes an achievement.
func (s *Service) Delete(id string) (bool, error) {
	achievement, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if achievement == nil {
		return false, nil
	}
	if err := s.db.Delete(&models.AchievementModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

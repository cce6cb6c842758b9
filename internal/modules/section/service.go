package section

import (
	"errors"

	"github.com/ranstack/portfolio-core/internal/models"
	"gorm.io/gorm"
)

// ErrNameTaken is returned when the section name is already in use.
var ErrNameTaken = errors.New("a section with this name already exists")

// Service handles CMS section business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every section in display order. The client filters by page
// and publish state itself, so the public list is unfiltered.
func (s *Service) List() ([]models.SectionModel, error) {
	var sections []models.SectionModel
	err := s.db.Preload("AuthorUser").
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error
	return sections, err
}

// GetByName fetches a section by its unique name.
func (s *Service) GetByName(name string) (*models.SectionModel, error) {
	var section models.SectionModel
	if err := s.db.Preload("AuthorUser").First(&section, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

// Create inserts a new section authored by authorID.
func (s *Service) Create(dto *CreateSectionDTO, authorID string) (*models.SectionModel, error) {
	var count int64
	if err := s.db.Model(&models.SectionModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	section := models.SectionModel{
		Name:        dto.Name,
		Page:        "home",
		Title:       dto.Title,
		Subtitle:    dto.Subtitle,
		Content:     dto.Content,
		Images:      dto.Images,
		Videos:      dto.Videos,
		Links:       dto.Links,
		IsPublished: true,
		Metadata:    dto.Metadata,
		AuthorID:    &authorID,
	}
	if dto.Page != "" {
		section.Page = dto.Page
	}
	if dto.SortOrder != nil {
		section.SortOrder = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		section.IsPublished = *dto.IsPublished
	}

	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Update patches a section by name and stamps the acting admin as its author.
func (s *Service) Update(name string, dto *UpdateSectionDTO, actorID string) (*models.SectionModel, error) {
	section, err := s.GetByName(name)
	if err != nil || section == nil {
		return section, err
	}

	section.AuthorID = &actorID
	// GetByName preloaded the previous author; left in place, the belongs-to
	// save callback would write its ID back over the stamp above.
	section.AuthorUser = nil

	if dto.Page != nil {
		section.Page = *dto.Page
	}
	if dto.Title != nil {
		section.Title = *dto.Title
	}
	if dto.Subtitle != nil {
		section.Subtitle = *dto.Subtitle
	}
	if dto.Content != nil {
		section.Content = *dto.Content
	}
	if dto.Images != nil {
		section.Images = *dto.Images
	}
	if dto.Videos != nil {
		section.Videos = *dto.Videos
	}
	if dto.Links != nil {
		section.Links = *dto.Links
	}
	if dto.SortOrder != nil {
		section.SortOrder = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		section.IsPublished = *dto.IsPublished
	}
	if dto.Metadata != nil {
		section.Metadata = *dto.Metadata
	}

	// Save runs the JSON serializers for the structured columns.
	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return s.GetByName(name)
}

// Delete removes a section by name.
func (s *Service) Delete(name string) (bool, error) {
	section, err := s.GetByName(name)
	if err != nil {
		return false, err
	}
	if section == nil {
		return false, nil
	}
	if err := s.db.Delete(&models.SectionModel{}, "id = ?", section.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}

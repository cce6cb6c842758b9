package project

import (
	"context"
	"errors"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"github.com/ranstack/portfolio-core/internal/pkg/slug"
	"github.com/ranstack/portfolio-core/internal/pkg/storage"
	"github.com/ranstack/portfolio-core/internal/pkg/upload"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when a title derives a slug that already exists.
var ErrSlugTaken = errors.New("a project with this title already exists")

const imageFolder = "projects"

// Service handles project business logic.
type Service struct {
	db    *gorm.DB
	store storage.Storage
}

func NewService(db *gorm.DB, store storage.Storage) *Service {
	return &Service{db: db, store: store}
}

// List returns published projects, newest first.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ProjectModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProjectModel{}).
		Preload("AuthorUser").
		Where("is_published = ?", true).
		Order("created_at DESC")

	if lq.Search != "" {
		like := "%" + lq.Search + "%"
		tx = tx.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if lq.Category != "" {
		tx = tx.Where("category = ?", lq.Category)
	}

	var projects []models.ProjectModel
	pag, err := pagination.Paginate(tx, q, &projects)
	return projects, pag, err
}

// AdminList returns all projects regardless of publish state, newest first.
func (s *Service) AdminList(q pagination.Query) ([]models.ProjectModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProjectModel{}).
		Preload("AuthorUser").
		Order("created_at DESC")

	var projects []models.ProjectModel
	pag, err := pagination.Paginate(tx, q, &projects)
	return projects, pag, err
}

// GetBySlug fetches a project. Unpublished projects are hidden unless the
// caller is an admin previewing a draft.
func (s *Service) GetBySlug(slugStr string, isAdmin bool) (*models.ProjectModel, error) {
	tx := s.db.Preload("AuthorUser").Where("slug = ?", slugStr)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}

	var project models.ProjectModel
	err := tx.First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// GetByID fetches a project by ID without publish filtering.
func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var project models.ProjectModel
	if err := s.db.Preload("AuthorUser").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// Create inserts a new project with an optional featured image and gallery.
func (s *Service) Create(ctx context.Context, dto *CreateProjectDTO, authorID string, featured *upload.File, gallery []*upload.File) (*models.ProjectModel, error) {
	slugStr := slug.Derive(dto.Title)

	var count int64
	if err := s.db.Model(&models.ProjectModel{}).Where("slug = ?", slugStr).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	project := models.ProjectModel{
		Title:           dto.Title,
		Slug:            slugStr,
		Description:     dto.Description,
		LongDescription: dto.LongDescription,
		Technologies:    parseList(dto.Technologies),
		Category:        "web",
		DemoURL:         dto.DemoURL,
		GithubURL:       dto.GithubURL,
		Status:          "completed",
		AuthorID:        &authorID,
	}
	if dto.Category != "" {
		project.Category = dto.Category
	}
	if dto.Status != "" {
		project.Status = dto.Status
	}
	if dto.IsFeatured != nil {
		project.IsFeatured = *dto.IsFeatured
	}
	if dto.SortOrder != nil {
		project.SortOrder = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		project.IsPublished = *dto.IsPublished
	}

	if featured != nil {
		obj, err := s.store.Upload(ctx, imageFolder, featured.Name, featured.ContentType, featured.Data)
		if err != nil {
			return nil, err
		}
		project.FeaturedImageURL = obj.URL
		project.FeaturedImageKey = obj.Key
	}
	if len(gallery) > 0 {
		urls, keys, err := s.uploadGallery(ctx, gallery)
		if err != nil {
			return nil, err
		}
		project.Images = urls
		project.ImageKeys = keys
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update patches a project. A new featured image replaces the old one; a new
// gallery replaces the whole previous set.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateProjectDTO, featured *upload.File, gallery []*upload.File) (*models.ProjectModel, error) {
	project, err := s.GetByID(id)
	if err != nil || project == nil {
		return project, err
	}

	updates := map[string]interface{}{}

	if dto.Title != nil && *dto.Title != project.Title {
		newSlug := slug.Derive(*dto.Title)
		if newSlug != project.Slug {
			var count int64
			if err := s.db.Model(&models.ProjectModel{}).
				Where("slug = ? AND id <> ?", newSlug, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrSlugTaken
			}
			updates["slug"] = newSlug
		}
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.LongDescription != nil {
		updates["long_description"] = *dto.LongDescription
	}
	if dto.Technologies != nil {
		updates["technologies"] = parseList(*dto.Technologies)
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.DemoURL != nil {
		updates["demo_url"] = *dto.DemoURL
	}
	if dto.GithubURL != nil {
		updates["github_url"] = *dto.GithubURL
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.IsFeatured != nil {
		updates["is_featured"] = *dto.IsFeatured
	}
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
	}

	if featured != nil {
		obj, err := s.store.Upload(ctx, imageFolder, featured.Name, featured.ContentType, featured.Data)
		if err != nil {
			return nil, err
		}
		if project.FeaturedImageKey != "" {
			_ = s.store.Delete(ctx, project.FeaturedImageKey)
		}
		updates["featured_image_url"] = obj.URL
		updates["featured_image_key"] = obj.Key
	}
	if len(gallery) > 0 {
		urls, keys, err := s.uploadGallery(ctx, gallery)
		if err != nil {
			return nil, err
		}
		for _, key := range project.ImageKeys {
			_ = s.store.Delete(ctx, key)
		}
		updates["images"] = urls
		updates["image_keys"] = keys
	}

	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes a project and all its stored images.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if project == nil {
		return false, nil
	}

	if project.FeaturedImageKey != "" {
		_ = s.store.Delete(ctx, project.FeaturedImageKey)
	}
	for _, key := range project.ImageKeys {
		_ = s.store.Delete(ctx, key)
	}

	if err := s.db.Delete(&models.ProjectModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) uploadGallery(ctx context.Context, files []*upload.File) (models.StringArray, models.StringArray, error) {
	urls := make(models.StringArray, 0, len(files))
	keys := make(models.StringArray, 0, len(files))
	for _, f := range files {
		obj, err := s.store.Upload(ctx, imageFolder, f.Name, f.ContentType, f.Data)
		if err != nil {
			return nil, nil, err
		}
		urls = append(urls, obj.URL)
		keys = append(keys, obj.Key)
	}
	return urls, keys, nil
}

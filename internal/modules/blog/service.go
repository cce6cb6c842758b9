package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"github.com/ranstack/portfolio-core/internal/pkg/slug"
	"github.com/ranstack/portfolio-core/internal/pkg/storage"
	"github.com/ranstack/portfolio-core/internal/pkg/upload"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when a title derives a slug that already exists.
var ErrSlugTaken = errors.New("a blog with this title already exists")

const imageFolder = "blogs"

// Service handles blog business logic.
type Service struct {
	db    *gorm.DB
	store storage.Storage
}

func NewService(db *gorm.DB, store storage.Storage) *Service {
	return &Service{db: db, store: store}
}

// List returns published blogs, newest published first.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.BlogModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogModel{}).
		Preload("AuthorUser").
		Where("is_published = ?", true).
		Order("published_at DESC")

	if lq.Search != "" {
		like := "%" + lq.Search + "%"
		tx = tx.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(excerpt) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if lq.Tag != "" {
		// StringArray stores a JSON text column; a quoted substring match is
		// portable across postgres and sqlite.
		tx = tx.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", lq.Tag))
	}

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// AdminList returns all blogs regardless of publish state, newest first.
func (s *Service) AdminList(q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogModel{}).
		Preload("AuthorUser").
		Order("created_at DESC")

	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// GetBySlug fetches a blog and atomically bumps its view counter. Unpublished
// blogs are hidden unless the caller is an admin previewing a draft.
func (s *Service) GetBySlug(slugStr string, isAdmin bool) (*models.BlogModel, error) {
	tx := s.db.Preload("AuthorUser").Where("slug = ?", slugStr)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}

	var blog models.BlogModel
	err := tx.First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.db.Model(&models.BlogModel{}).
		Where("id = ?", blog.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	blog.Views++

	return &blog, nil
}

// GetByID fetches a blog by ID without publish filtering.
func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	var blog models.BlogModel
	if err := s.db.Preload("AuthorUser").First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// Create inserts a new blog authored by authorID. An optional featured image
// is uploaded before the row is written.
func (s *Service) Create(ctx context.Context, dto *CreateBlogDTO, authorID string, image *upload.File) (*models.BlogModel, error) {
	slugStr := slug.Derive(dto.Title)

	var count int64
	if err := s.db.Model(&models.BlogModel{}).Where("slug = ?", slugStr).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	blog := models.BlogModel{
		Title:    dto.Title,
		Slug:     slugStr,
		Excerpt:  dto.Excerpt,
		Content:  dto.Content,
		Tags:     parseTags(dto.Tags),
		AuthorID: &authorID,
	}
	if dto.ReadTime != nil {
		blog.ReadTime = *dto.ReadTime
	} else {
		blog.ReadTime = 5
	}
	if dto.IsPublished != nil && *dto.IsPublished {
		blog.IsPublished = true
		now := time.Now()
		blog.PublishedAt = &now
	}

	if image != nil {
		obj, err := s.store.Upload(ctx, imageFolder, image.Name, image.ContentType, image.Data)
		if err != nil {
			return nil, err
		}
		blog.FeaturedImageURL = obj.URL
		blog.FeaturedImageKey = obj.Key
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// Update patches a blog. A changed title regenerates the slug; a new featured
// image replaces (and removes) the old one; publish transitions maintain
// published_at.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateBlogDTO, image *upload.File) (*models.BlogModel, error) {
	blog, err := s.GetByID(id)
	if err != nil || blog == nil {
		return blog, err
	}

	updates := map[string]interface{}{}

	if dto.Title != nil && *dto.Title != blog.Title {
		newSlug := slug.Derive(*dto.Title)
		if newSlug != blog.Slug {
			var count int64
			if err := s.db.Model(&models.BlogModel{}).
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
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Tags != nil {
		updates["tags"] = parseTags(*dto.Tags)
	}
	if dto.ReadTime != nil {
		updates["read_time"] = *dto.ReadTime
	}
	if dto.IsPublished != nil && *dto.IsPublished != blog.IsPublished {
		updates["is_published"] = *dto.IsPublished
		if *dto.IsPublished {
			updates["published_at"] = time.Now()
		} else {
			updates["published_at"] = gorm.Expr("NULL")
		}
	}

	if image != nil {
		obj, err := s.store.Upload(ctx, imageFolder, image.Name, image.ContentType, image.Data)
		if err != nil {
			return nil, err
		}
		if blog.FeaturedImageKey != "" {
			// Best effort; a dangling object is better than a failed update.
			_ = s.store.Delete(ctx, blog.FeaturedImageKey)
		}
		updates["featured_image_url"] = obj.URL
		updates["featured_image_key"] = obj.Key
	}

	if len(updates) > 0 {
		if err := s.db.Model(blog).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes a blog and its stored featured image.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	blog, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if blog == nil {
		return false, nil
	}

	if blog.FeaturedImageKey != "" {
		_ = s.store.Delete(ctx, blog.FeaturedImageKey)
	}

	if err := s.db.Delete(&models.BlogModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

package blog

import (
	"encoding/json"
	"strings"

	"github.com/ranstack/portfolio-core/internal/models"
)

// CreateBlogDTO is bound from the multipart create form. The featured image
// arrives as a separate file part.
type CreateBlogDTO struct {
	Title       string `form:"title" json:"title" binding:"required,min=1,max=200"`
	Excerpt     string `form:"excerpt" json:"excerpt" binding:"required,min=1,max=500"`
	Content     string `form:"content" json:"content" binding:"required,min=1"`
	Tags        string `form:"tags" json:"tags"`
	ReadTime    *int   `form:"readTime" json:"readTime"`
	IsPublished *bool  `form:"isPublished" json:"isPublished"`
}

// UpdateBlogDTO patches a blog; only present fields are applied.
type UpdateBlogDTO struct {
	Title       *string `form:"title" json:"title" binding:"omitempty,min=1,max=200"`
	Excerpt     *string `form:"excerpt" json:"excerpt" binding:"omitempty,min=1,max=500"`
	Content     *string `form:"content" json:"content" binding:"omitempty,min=1"`
	Tags        *string `form:"tags" json:"tags"`
	ReadTime    *int    `form:"readTime" json:"readTime"`
	IsPublished *bool   `form:"isPublished" json:"isPublished"`
}

// ListQuery holds public list filters.
type ListQuery struct {
	Search string `form:"search"`
	Tag    string `form:"tag"`
}

type blogResponse struct {
	models.BlogModel
	Author *models.Author `json:"author,omitempty"`
}

func toResponse(b *models.BlogModel) blogResponse {
	r := blogResponse{BlogModel: *b}
	if b.AuthorUser != nil {
		r.Author = &models.Author{Email: b.AuthorUser.Email}
	}
	return r
}

// parseTags accepts either a JSON array string (how the admin form submits)
// or a comma-separated list.
func parseTags(raw string) models.StringArray {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.StringArray{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err == nil {
		return tags
	}

	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

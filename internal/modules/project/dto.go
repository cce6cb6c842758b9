package project

import (
	"encoding/json"
	"strings"

	"github.com/ranstack/portfolio-core/internal/models"
)

// CreateProjectDTO is bound from the multipart create form. Images arrive as
// separate file parts (featuredImage, images).
type CreateProjectDTO struct {
	Title           string `form:"title" json:"title" binding:"required,min=1,max=200"`
	Description     string `form:"description" json:"description" binding:"required,min=1,max=1000"`
	LongDescription string `form:"longDescription" json:"longDescription"`
	Technologies    string `form:"technologies" json:"technologies"`
	Category        string `form:"category" json:"category"`
	DemoURL         string `form:"demoUrl" json:"demoUrl"`
	GithubURL       string `form:"githubUrl" json:"githubUrl"`
	Status          string `form:"status" json:"status"`
	IsFeatured      *bool  `form:"featured" json:"featured"`
	SortOrder       *int   `form:"order" json:"order"`
	IsPublished     *bool  `form:"isPublished" json:"isPublished"`
}

// UpdateProjectDTO patches a project; only present fields are applied.
type UpdateProjectDTO struct {
	Title           *string `form:"title" json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string `form:"description" json:"description" binding:"omitempty,min=1,max=1000"`
	LongDescription *string `form:"longDescription" json:"longDescription"`
	Technologies    *string `form:"technologies" json:"technologies"`
	Category        *string `form:"category" json:"category"`
	DemoURL         *string `form:"demoUrl" json:"demoUrl"`
	GithubURL       *string `form:"githubUrl" json:"githubUrl"`
	Status          *string `form:"status" json:"status"`
	IsFeatured      *bool   `form:"featured" json:"featured"`
	SortOrder       *int    `form:"order" json:"order"`
	IsPublished     *bool   `form:"isPublished" json:"isPublished"`
}

// ListQuery holds public list filters.
type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

type projectResponse struct {
	models.ProjectModel
	Author *models.Author `json:"author,omitempty"`
}

func toResponse(p *models.ProjectModel) projectResponse {
	r := projectResponse{ProjectModel: *p}
	if p.AuthorUser != nil {
		r.Author = &models.Author{Email: p.AuthorUser.Email}
	}
	return r
}

// parseList accepts either a JSON array string or a comma-separated list.
func parseList(raw string) models.StringArray {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.StringArray{}
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items
	}

	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			items = append(items, t)
		}
	}
	return items
}

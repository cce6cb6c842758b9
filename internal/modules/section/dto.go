package section

import "github.com/ranstack/portfolio-core/internal/models"

// CreateSectionDTO is bound from the JSON create body.
type CreateSectionDTO struct {
	Name        string                 `json:"name" binding:"required,min=1,max=100"`
	Page        string                 `json:"page"`
	Title       string                 `json:"title"`
	Subtitle    string                 `json:"subtitle"`
	Content     string                 `json:"content"`
	Images      []models.SectionImage  `json:"images"`
	Videos      []models.SectionVideo  `json:"videos"`
	Links       []models.SectionLink   `json:"links"`
	SortOrder   *int                   `json:"order"`
	IsPublished *bool                  `json:"isPublished"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// UpdateSectionDTO patches a section; only present fields are applied.
type UpdateSectionDTO struct {
	Page        *string                 `json:"page"`
	Title       *string                 `json:"title"`
	Subtitle    *string                 `json:"subtitle"`
	Content     *string                 `json:"content"`
	Images      *[]models.SectionImage  `json:"images"`
	Videos      *[]models.SectionVideo  `json:"videos"`
	Links       *[]models.SectionLink   `json:"links"`
	SortOrder   *int                    `json:"order"`
	IsPublished *bool                   `json:"isPublished"`
	Metadata    *map[string]interface{} `json:"metadata"`
}

type sectionResponse struct {
	models.SectionModel
	Author *models.Author `json:"author,omitempty"`
}

func toResponse(s *models.SectionModel) sectionResponse {
	r := sectionResponse{SectionModel: *s}
	if s.AuthorUser != nil {
		r.Author = &models.Author{Email: s.AuthorUser.Email}
	}
	return r
}

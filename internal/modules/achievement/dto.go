package achievement

import "github.com/ranstack/portfolio-core/internal/models"

// CreateAchievementDTO is bound from the JSON create body.
type CreateAchievementDTO struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	SortOrder   *int     `json:"order"`
	IsPublished *bool    `json:"isPublished"`
}

// UpdateAchievementDTO patches an achievement; only present fields are applied.
type UpdateAchievementDTO struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description"`
	Items       *[]string `json:"items"`
	Icon        *string   `json:"icon"`
	Category    *string   `json:"category"`
	SortOrder   *int      `json:"order"`
	IsPublished *bool     `json:"isPublished"`
}

type achievementResponse struct {
	models.AchievementModel
	Author *models.Author `json:"author,omitempty"`
}

func toResponse(a *models.AchievementModel) achievementResponse {
	r := achievementResponse{AchievementModel: *a}
	if a.AuthorUser != nil {
		r.Author = &models.Author{Email: a.AuthorUser.Email}
	}
	return r
}

func validIcon(icon string) bool {
	for _, v := range models.AchievementIcons {
		if v == icon {
			return true
		}
	}
	return false
}

func validCategory(category string) bool {
	for _, v := range models.AchievementCategories {
		if v == category {
			return true
		}
	}
	return false
}

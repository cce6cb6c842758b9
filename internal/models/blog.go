package models

import "time"

// BlogModel is a blog post.
type BlogModel struct {
	Base
	Title            string      `json:"title"              gorm:"not null"`
	Slug             string      `json:"slug"               gorm:"uniqueIndex;not null"`
	Excerpt          string      `json:"excerpt"            gorm:"type:text"`
	Content          string      `json:"content"            gorm:"type:text"`
	FeaturedImageURL string      `json:"featured_image_url"`
	FeaturedImageKey string      `json:"-"`
	Tags             StringArray `json:"tags"               gorm:"type:json"`
	ReadTime         int         `json:"read_time"          gorm:"default:5"`
	IsPublished      bool        `json:"is_published"       gorm:"default:false;index"`
	PublishedAt      *time.Time  `json:"published_at"`
	Views            int         `json:"views"              gorm:"default:0"`
	AuthorID         *string     `json:"author_id"          gorm:"index"`
	AuthorUser       *UserModel  `json:"-"                  gorm:"foreignKey:AuthorID"`
}

func (BlogModel) TableName() string { return "blogs" }

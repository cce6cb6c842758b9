package models

// ProjectModel is a portfolio project.
type ProjectModel struct {
	Base
	Title            string      `json:"title"              gorm:"not null"`
	Slug             string      `json:"slug"               gorm:"uniqueIndex;not null"`
	Description      string      `json:"description"        gorm:"type:text"`
	LongDescription  string      `json:"long_description"   gorm:"type:text"`
	Technologies     StringArray `json:"technologies"       gorm:"type:json"`
	Category         string      `json:"category"           gorm:"default:web;index"`
	FeaturedImageURL string      `json:"featured_image_url"`
	FeaturedImageKey string      `json:"-"`
	Images           StringArray `json:"images"             gorm:"type:json"`
	ImageKeys        StringArray `json:"-"                  gorm:"type:json"`
	DemoURL          string      `json:"demo_url"`
	GithubURL        string      `json:"github_url"`
	Status           string      `json:"status"             gorm:"default:completed"`
	IsFeatured       bool        `json:"is_featured"        gorm:"default:false"`
	SortOrder        int         `json:"order"              gorm:"column:sort_order;default:0"`
	IsPublished      bool        `json:"is_published"       gorm:"default:false;index"`
	AuthorID         *string     `json:"author_id"          gorm:"index"`
	AuthorUser       *UserModel  `json:"-"                  gorm:"foreignKey:AuthorID"`
}

func (ProjectModel) TableName() string { return "projects" }

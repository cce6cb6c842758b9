package models

// SectionImage is an image attached to a content section.
type SectionImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// SectionVideo is a video attached to a content section.
type SectionVideo struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// SectionLink is a structured link attached to a content section.
type SectionLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// SectionModel drives all marketing-page copy; each named row is one page
// section the client renders (hero-section, vision-section, ...).
type SectionModel struct {
	Base
	Name        string         `json:"name"         gorm:"uniqueIndex;not null"`
	Page        string         `json:"page"         gorm:"default:home"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Content     string         `json:"content"      gorm:"type:text"`
	Images      []SectionImage `json:"images"       gorm:"type:json;serializer:json"`
	Videos      []SectionVideo `json:"videos"       gorm:"type:json;serializer:json"`
	Links       []SectionLink  `json:"links"        gorm:"type:json;serializer:json"`
	SortOrder   int            `json:"order"        gorm:"column:sort_order;default:0"`
	IsPublished bool           `json:"is_published" gorm:"default:true;index"`
	Metadata    JSONMap        `json:"metadata"     gorm:"type:json"`
	AuthorID    *string        `json:"author_id"    gorm:"index"`
	AuthorUser  *UserModel     `json:"-"            gorm:"foreignKey:AuthorID"`
}

func (SectionModel) TableName() string { return "sections" }

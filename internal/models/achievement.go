package models

// AchievementIcons is the fixed icon vocabulary the admin editor offers.
var AchievementIcons = []string{
	"award", "briefcase", "globe", "trending-up", "code",
	"users", "star", "target", "cloud", "palette", "settings",
}

// AchievementCategories is the fixed category vocabulary.
var AchievementCategories = []string{
	"skills", "experience", "achievements", "certifications", "other",
}

// AchievementModel is a skills/experience card on the achievements section.
type AchievementModel struct {
	Base
	Title       string      `json:"title"        gorm:"not null"`
	Description string      `json:"description"  gorm:"type:text"`
	Items       StringArray `json:"items"        gorm:"type:json"`
	Icon        string      `json:"icon"         gorm:"default:award"`
	Category    string      `json:"category"     gorm:"default:skills;index"`
	SortOrder   int         `json:"order"        gorm:"column:sort_order;default:0"`
	IsPublished bool        `json:"is_published" gorm:"default:false;index"`
	AuthorID    *string     `json:"author_id"    gorm:"index"`
	AuthorUser  *UserModel  `json:"-"            gorm:"foreignKey:AuthorID"`
}

func (AchievementModel) TableName() string { return "achievements" }

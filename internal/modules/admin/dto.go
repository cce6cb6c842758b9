package admin

import "github.com/ranstack/portfolio-core/internal/models"

// SetupDTO creates the initial admin account.
type SetupDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateRoleDTO changes a user's role.
type UpdateRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

// EntityCounts is a total/published pair for content collections.
type EntityCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

// ContactCounts is a total/unread pair for contact messages.
type ContactCounts struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// DashboardStats aggregates collection counters.
type DashboardStats struct {
	Blogs        EntityCounts  `json:"blogs"`
	Projects     EntityCounts  `json:"projects"`
	Achievements EntityCounts  `json:"achievements"`
	Contacts     ContactCounts `json:"contacts"`
	Users        int64         `json:"users"`
}

// Dashboard is the admin landing payload.
type Dashboard struct {
	Stats          DashboardStats        `json:"stats"`
	RecentBlogs    []models.BlogModel    `json:"recent_blogs"`
	RecentContacts []models.ContactModel `json:"recent_contacts"`
}

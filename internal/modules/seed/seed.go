// Package seed inserts the default home-page sections on startup so a fresh
// deployment renders a complete site before any admin edits.
package seed

import (
	"errors"

	"github.com/ranstack/portfolio-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service seeds default content.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Run seeds the default sections, attributed to the first user. Existing
// sections are never touched, so repeated startups are no-ops. Without any
// user the run is skipped entirely.
func (s *Service) Run() error {
	var author models.UserModel
	if err := s.db.Order("created_at ASC").First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("no users found, skipping section seeding")
			return nil
		}
		return err
	}

	for _, section := range defaultSections() {
		var count int64
		if err := s.db.Model(&models.SectionModel{}).Where("name = ?", section.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		section.AuthorID = &author.ID
		if err := s.db.Create(&section).Error; err != nil {
			return err
		}
		s.log.Info("seeded section", zap.String("name", section.Name))
	}
	return nil
}

func defaultSections() []models.SectionModel {
	return []models.SectionModel{
		{
			Name:    "hero-section",
			Page:    "home",
			Title:   "Building Digital Products",
			Content: "From concept to deployment - I craft high-performance web apps, Android applications, and SEO-optimized websites that drive real business results.",
			Images:  []models.SectionImage{},
			Videos:  []models.SectionVideo{},
			Links:   []models.SectionLink{},

			SortOrder:   1,
			IsPublished: true,
			Metadata: models.JSONMap{
				"tagline": "Startup Founder & Full-Stack Developer",
			},
		},
		{
			Name:  "vision-section",
			Page:  "home",
			Title: "Great products aren't built in isolation they're crafted through code, strategy, and relentless iteration.",
			Content: "As a founder who codes, I bridge the gap between vision and execution. " +
				"At my company RanStack Solutions, I don't just manage development I build it. " +
				"From writing the first line of code to deploying at scale, I'm hands-on in " +
				"creating products that solve real problems and drive measurable growth.",
			Images: []models.SectionImage{},
			Videos: []models.SectionVideo{},
			Links:  []models.SectionLink{},

			SortOrder:   2,
			IsPublished: true,
			Metadata: models.JSONMap{
				"projectsCount": 50,
				"codeCount":     100000,
				"startupsCount": 3,
				"companyName":   "RanStack Solutions",
				"companyUrl":    "http://www.ranstacksolutions.com",
			},
		},
		{
			Name:    "expertise-section",
			Page:    "home",
			Title:   "Technical Expertise",
			Content: "From ideation to deployment, I handle every aspect of building digital products that scale and perform.",
			Images:  []models.SectionImage{},
			Videos:  []models.SectionVideo{},
			Links:   []models.SectionLink{},

			SortOrder:   3,
			IsPublished: true,
			Metadata: models.JSONMap{
				"expertiseAreas": []interface{}{
					map[string]interface{}{
						"iconName":    "Globe",
						"title":       "Web Development",
						"description": "Full-stack web applications using modern frameworks like React, Node.js, and cloud platforms.",
					},
					map[string]interface{}{
						"iconName":    "Smartphone",
						"title":       "Mobile Development",
						"description": "Native Android applications and cross-platform solutions with React Native.",
					},
					map[string]interface{}{
						"iconName":    "TrendingUp",
						"title":       "SEO & Performance",
						"description": "Search engine optimization and performance tuning for maximum visibility and speed.",
					},
					map[string]interface{}{
						"iconName":    "Code",
						"title":       "Custom Solutions",
						"description": "Tailored software solutions designed to meet specific business requirements.",
					},
				},
			},
		},
		{
			Name:    "projects-section",
			Page:    "home",
			Title:   "Featured Projects",
			Content: "Real-world applications and successful campaigns - from MVPs to production-ready platforms serving thousands of users.",
			Images:  []models.SectionImage{},
			Videos:  []models.SectionVideo{},
			Links:   []models.SectionLink{},

			SortOrder:   4,
			IsPublished: true,
			Metadata:    models.JSONMap{},
		},
		{
			Name:    "achievements-section",
			Page:    "home",
			Title:   "Skills & Technologies",
			Content: "Modern tech stack and proven methodologies for building scalable digital products.",
			Images:  []models.SectionImage{},
			Videos:  []models.SectionVideo{},
			Links:   []models.SectionLink{},

			SortOrder:   5,
			IsPublished: true,
			Metadata:    models.JSONMap{},
		},
		{
			Name:    "blogs-section",
			Page:    "home",
			Title:   "Latest Blogs",
			Content: "Insights, tutorials, and thoughts on web development, technology, and software engineering.",
			Images:  []models.SectionImage{},
			Videos:  []models.SectionVideo{},
			Links:   []models.SectionLink{},

			SortOrder:   6,
			IsPublished: true,
			Metadata:    models.JSONMap{},
		},
		{
			Name:  "contact-section",
			Page:  "home",
			Title: "Let's Build Together",
			Content: "Have a project in mind...? Need a technical co-founder or full-stack developer...? " +
				"Let's discuss how we can bring your vision to life from initial concept to live deployment.",
			Images: []models.SectionImage{},
			Videos: []models.SectionVideo{},
			Links:  []models.SectionLink{},

			SortOrder:   7,
			IsPublished: true,
			Metadata: models.JSONMap{
				"email":          "manjuhallegowda@gmail.com",
				"additionalInfo": "On-Site/Remote, global availability. Open for freelance & equity partnerships",
				"socialLinks": []interface{}{
					map[string]interface{}{
						"platform": "LinkedIn",
						"url":      "https://www.linkedin.com/in/manjuhallegowda/",
						"iconName": "Linkedin",
					},
					map[string]interface{}{
						"platform": "Twitter",
						"url":      "https://www.twitter.com/in/manjuhallegowda/",
						"iconName": "Twitter",
					},
					map[string]interface{}{
						"platform": "Instagram",
						"url":      "https://www.instagram.com/manju_halleygowda/",
						"iconName": "Instagram",
					},
				},
			},
		},
	}
}

package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/modules/achievement"
	"github.com/ranstack/portfolio-core/internal/modules/admin"
	"github.com/ranstack/portfolio-core/internal/modules/auth"
	"github.com/ranstack/portfolio-core/internal/modules/blog"
	"github.com/ranstack/portfolio-core/internal/modules/contact"
	"github.com/ranstack/portfolio-core/internal/modules/health"
	"github.com/ranstack/portfolio-core/internal/modules/project"
	"github.com/ranstack/portfolio-core/internal/modules/section"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/jwt"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"github.com/ranstack/portfolio-core/internal/pkg/storage"
)

// registerRoutes mounts every module under /api.
func (a *App) registerRoutes(provider identity.Provider, signer *jwt.Signer, store storage.Storage) {
	authMW := middleware.Auth(a.db, provider, signer)
	optionalMW := middleware.OptionalAuth(a.db, provider, signer)
	adminMW := middleware.RequireRole(models.RoleAdmin)

	api := a.router.Group("/api")

	health.NewHandler().RegisterRoutes(api)
	auth.NewHandler(auth.NewService(a.db, provider, signer)).RegisterRoutes(api, authMW)
	blog.NewHandler(blog.NewService(a.db, store)).RegisterRoutes(api, authMW, optionalMW, adminMW)
	project.NewHandler(project.NewService(a.db, store)).RegisterRoutes(api, authMW, optionalMW, adminMW)
	achievement.NewHandler(achievement.NewService(a.db)).RegisterRoutes(api, authMW, adminMW)
	contact.NewHandler(contact.NewService(a.db)).RegisterRoutes(api, authMW, adminMW)
	section.NewHandler(section.NewService(a.db)).RegisterRoutes(api, authMW, adminMW)
	admin.NewHandler(admin.NewService(a.db, provider)).RegisterRoutes(api, authMW, adminMW)

	a.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{Success: false, Message: "Route not found"})
	})
}

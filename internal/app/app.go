// Package app wires configuration, database, middleware and modules into a
// runnable HTTP application.
package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/config"
	"github.com/ranstack/portfolio-core/internal/database"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/modules/seed"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/jwt"
	pkgredis "github.com/ranstack/portfolio-core/internal/pkg/redis"
	"github.com/ranstack/portfolio-core/internal/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.Config
	router *gin.Engine
	db     *gorm.DB
	redis  *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → adapters → routes.
func New(logger *zap.Logger, cfg *config.Config) (*App, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	} else {
		logger.Warn("REDIS_URL not set, rate limiting disabled")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(secureMiddleware())
	router.Use(corsMiddleware(cfg))
	if rc != nil {
		router.Use(middleware.RateLimit(rc.Raw()))
	}

	signer := jwt.NewSigner(cfg.JWTSecret)
	provider := identity.New(cfg.Identity.URL, cfg.Identity.ServiceKey, cfg.Identity.JWTSecret)

	if !cfg.StorageConfigured() {
		logger.Warn("object storage credentials incomplete, uploads will fail")
	}
	store := storage.NewR2(
		cfg.R2.AccountID,
		cfg.R2.AccessKeyID,
		cfg.R2.SecretAccessKey,
		cfg.R2.Bucket,
		cfg.R2.PublicURL,
	)

	app := &App{cfg: cfg, router: router, db: db, redis: rc, logger: logger}
	app.registerRoutes(provider, signer, store)

	if err := seed.NewService(db, logger).Run(); err != nil {
		logger.Warn("section seeding failed", zap.Error(err))
	}

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

// Package config loads environment configuration, with optional .env support
// for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:8080"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	Identity Identity
	R2       R2
}

// Identity configures the external identity provider.
type Identity struct {
	URL        string `env:"IDENTITY_URL"`
	JWTSecret  string `env:"IDENTITY_JWT_SECRET,required"`
	ServiceKey string `env:"IDENTITY_SERVICE_KEY"`
}

// R2 configures Cloudflare R2 object storage.
type R2 struct {
	AccountID       string `env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	Bucket          string `env:"R2_BUCKET_NAME"`
	PublicURL       string `env:"R2_PUBLIC_URL"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool { return c.Env != "production" }

// StorageConfigured reports whether R2 credentials are present.
func (c *Config) StorageConfigured() bool {
	return c.R2.AccountID != "" && c.R2.AccessKeyID != "" && c.R2.SecretAccessKey != "" && c.R2.Bucket != ""
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"skullfire.dev/internal/content"
	"skullfire.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	ContentFile     string        `env:"CONTENT_FILE"`
	ProfileFile     string        `env:"PROFILE_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Log       LogConfig
	ImageCDN  ImageCDNConfig
	RateLimit RateLimitConfig

	Projects *models.ProjectList `env:"-"`
	Profile  *models.Profile     `env:"-"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// ImageCDNConfig locates hosted cover images
type ImageCDNConfig struct {
	BaseURL   string `env:"IMAGE_CDN_BASE_URL" envDefault:"https://cdn.sanity.io"`
	ProjectID string `env:"IMAGE_CDN_PROJECT_ID"`
	Dataset   string `env:"IMAGE_CDN_DATASET" envDefault:"production"`
}

// RateLimitConfig throttles the API; RPS <= 0 disables it
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and the content documents
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	projects, err := content.LoadProjects(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	profile, err := content.LoadProfile(cfg.ProfileFile)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	cfg.Projects = projects
	cfg.Profile = profile
	return &cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

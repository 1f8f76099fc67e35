package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Admin
	AdminToken string // Shared secret for the review API (Bearer token)

	// Proxies
	TrustedProxies string // Comma-separated CIDRs allowed to set X-Forwarded-For

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Redis (optional, backs the request limiter when set)
	RedisURL string

	// Submission quota
	SubmissionLimit  int           // Max accepted submissions per IP per window
	SubmissionWindow time.Duration // Rolling window for the quota

	// Notifications
	WebhookURL string // Discord-compatible webhook for new submissions

	// SMTP
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	SMTPFrom            string
	SMTPFromName        string
	SMTPTLS             string // "none", "starttls", "tls"
	EmailNotifyOnReview bool   // Email the submitter when their suggestion is decided

	// Categories
	CategoriesFile string

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Altboard"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/altboard?sslmode=disable"),
		AdminToken:     getEnv("ADMIN_TOKEN", "change-me-in-production"),
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		RedisURL:       getEnv("REDIS_URL", ""),

		SubmissionLimit:  getEnvInt("SUBMISSION_LIMIT", 5),
		SubmissionWindow: getEnvDuration("SUBMISSION_WINDOW", 24*time.Hour),

		WebhookURL: getEnv("WEBHOOK_URL", ""),

		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:            getEnv("SMTP_FROM", ""),
		SMTPFromName:        getEnv("SMTP_FROM_NAME", ""),
		SMTPTLS:             getEnv("SMTP_TLS", "starttls"),
		EmailNotifyOnReview: getEnv("EMAIL_NOTIFY_ON_REVIEW", "true") != "false",

		CategoriesFile: getEnv("CATEGORIES_FILE", "categories.yaml"),

		SiteTitle: getEnv("SITE_TITLE", "Altboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured well enough to send mail.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr       = ":8080"
	defaultSessionTTL = "24h"
	defaultJWTSecret  = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	SessionTTL  time.Duration
	CORSOrigins []string
}

// Load reads runtime configuration from the environment, applying development
// defaults. Placeholder secrets are rejected outside development.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.AppEnv = strings.TrimSpace(os.Getenv("APP_ENV"))
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	cfg.Addr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	ttlRaw := strings.TrimSpace(os.Getenv("SESSION_TTL"))
	if ttlRaw == "" {
		ttlRaw = defaultSessionTTL
	}
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", ttlRaw, err)
	}
	cfg.SessionTTL = ttl

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

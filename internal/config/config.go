package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "equiptrack.db"
	defaultPort        = "8080"
	defaultJWTTTL      = "24h"
)

type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		Port:        getEnv("PORT", defaultPort),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port           int
	DBPath         string
	SessionSecret  string
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment variables
// win over it. SESSION_SECRET is the only required setting.
func Load() (Config, error) {
	// Missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	cfg := Config{
		Port:           8080,
		DBPath:         "data/mentalhealth.db",
		SessionTTL:     24 * time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("config: SESSION_SECRET is required (try: openssl rand -hex 32)")
	}

	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SESSION_TTL %q: %w", ttlStr, err)
		}
		cfg.SessionTTL = ttl
	}

	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	}

	return cfg, nil
}

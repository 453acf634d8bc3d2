// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultPort       = "8080"
	DefaultConfigPath = "todoapi.toml"
)

// DefaultAllowedOrigins returns the origins allowed by default, the
// local Angular dev server.
func DefaultAllowedOrigins() []string {
	return []string{"http://localhost:4200"}
}

// Config holds the full configuration for the server.
type Config struct {
	// Port the HTTP server listens on.
	Port string `toml:"port"`

	// DBPath selects the SQLite store when set. Empty means the
	// in-memory store.
	DBPath string `toml:"db_path"`

	// AllowedOrigins are the frontend origins permitted by CORS.
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load reads the config file at path (skipped when absent), applies
// environment overrides, and fills in defaults. An empty path falls
// back to the CONFIG_PATH env var, then to DefaultConfigPath.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = getEnv("CONFIG_PATH", DefaultConfigPath)
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Environment overrides
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultAllowedOrigins()
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const placeholderSecret = "change_me_in_production"

// Config is resolved in three layers: defaults, then an optional YAML file,
// then VELLE_* environment variables.
type Config struct {
	SecretKey    string `yaml:"secret_key"`
	DBPath       string `yaml:"db_path"`
	Port         string `yaml:"port"`
	Timezone     string `yaml:"timezone"`
	CORSOrigins  string `yaml:"cors_origins"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

func Default() Config {
	return Config{
		SecretKey:   placeholderSecret,
		DBPath:      filepath.Join("data", "velle.db"),
		Port:        "8080",
		Timezone:    "UTC",
		CORSOrigins: "*",
	}
}

// Load reads the optional YAML file at path (a missing file is not an
// error) and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.SecretKey = envOr("VELLE_SECRET_KEY", cfg.SecretKey)
	cfg.DBPath = envOr("VELLE_DB_PATH", cfg.DBPath)
	cfg.Port = envOr("VELLE_PORT", cfg.Port)
	cfg.Timezone = envOr("VELLE_TZ", cfg.Timezone)
	cfg.CORSOrigins = envOr("VELLE_CORS_ORIGINS", cfg.CORSOrigins)
	if raw := os.Getenv("VELLE_COOKIE_SECURE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse VELLE_COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = parsed
	}

	return cfg, nil
}

// UsesPlaceholderSecret reports whether the secret key was never changed
// from the shipped default.
func (cfg Config) UsesPlaceholderSecret() bool {
	return strings.TrimSpace(cfg.SecretKey) == "" || cfg.SecretKey == placeholderSecret
}

func envOr(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

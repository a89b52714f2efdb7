package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Port           string
	StoreURL       string // redis://host:port/db, a SQLite file path, or "memory:"
	AllowedOrigins string
	UIDir          string // optional directory holding an index.html override
	Environment    string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8787"),
		StoreURL:       getEnv("STORE_URL", "memory:"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		UIDir:          getEnv("UI_DIR", ""),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

// FileConfig mirrors Config for the optional YAML config file.
// Only non-empty fields override the environment-derived values.
type FileConfig struct {
	Port           string `yaml:"port"`
	StoreURL       string `yaml:"store_url"`
	AllowedOrigins string `yaml:"allowed_origins"`
	UIDir          string `yaml:"ui_dir"`
}

// ApplyFile overlays settings from a YAML config file onto the config
func (c *Config) ApplyFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.StoreURL != "" {
		c.StoreURL = fc.StoreURL
	}
	if fc.AllowedOrigins != "" {
		c.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.UIDir != "" {
		c.UIDir = fc.UIDir
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

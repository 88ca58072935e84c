package config

import (
	"os"
	"strconv"

	"datalens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Uploads  UploadConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// UploadConfig holds file upload settings
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// DatabaseConfig holds optional report persistence settings. An empty URL
// disables persistence entirely.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds analysis pipeline settings
type AnalysisConfig struct {
	Workers int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Uploads: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: getEnvInt64("MAX_UPLOAD_BYTES", 50*1024*1024),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Analysis: AnalysisConfig{
			Workers: getEnvInt("ANALYSIS_WORKERS", 4),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validate(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Uploads.Dir == "" {
		return errors.ConfigInvalid("UPLOAD_DIR must not be empty")
	}
	if c.Uploads.MaxBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Analysis.Workers < 1 {
		return errors.ConfigInvalid("ANALYSIS_WORKERS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

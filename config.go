package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	TMDB TMDBConfig
	Log  LogConfig
}

type TMDBConfig struct {
	APIKey       string        `validate:"required_without=ReadToken"`
	ReadToken    string        `validate:"required_without=APIKey"`
	BaseURL      string        `validate:"required,url"`
	ImageBaseURL string        `validate:"required,url"`
	Language     string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
}

type LogConfig struct {
	File       string `validate:"required"`
	Level      string `validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `validate:"gt=0"`
	MaxBackups int    `validate:"gte=0"`
}

// LoadConfig reads environment variables and returns a validated Config.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("TMDB_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("TMDB_TIMEOUT: %w", err)
	}

	cfg := &Config{
		TMDB: TMDBConfig{
			APIKey:       getEnv("TMDB_API_KEY", ""),
			ReadToken:    getEnv("TMDB_READ_TOKEN", ""),
			BaseURL:      getEnv("TMDB_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL: getEnv("TMDB_IMAGE_URL", "https://image.tmdb.org/t/p"),
			Language:     getEnv("TMDB_LANGUAGE", "es-ES"),
			Timeout:      timeout,
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", filepath.Join(os.TempDir(), "nebulosa.log")),
			Level:      getEnv("LOG_LEVEL", "info"),
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the language is a BCP 47 tag.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := language.Parse(c.TMDB.Language); err != nil {
		return fmt.Errorf("invalid configuration: TMDB_LANGUAGE %q: %w", c.TMDB.Language, err)
	}
	return nil
}

// WikiLanguage is the Wikipedia edition matching the configured language.
func (c *Config) WikiLanguage() string {
	tag, err := language.Parse(c.TMDB.Language)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

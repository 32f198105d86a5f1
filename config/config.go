// Package config resolves wikiroulette's settings once at startup.
// Priority: command-line flag > environment (and .env) > locale > default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds the settings the CLI passes into the core.
type Config struct {
	Language  string `env:"WIKIROULETTE_LANGUAGE" env-description:"Language edition of Wikipedia (default: derived from the locale)"`
	Format    string `env:"WIKIROULETTE_FORMAT" env-default:"text" env-description:"Output format: text, markdown, json or pdf"`
	Width     int    `env:"WIKIROULETTE_WIDTH" env-default:"70" env-description:"Wrap column for text output, 0 disables wrapping"`
	UserAgent string `env:"WIKIROULETTE_USER_AGENT" env-description:"User-Agent header sent to Wikipedia"`
}

// Load reads envFile (if it exists) into the process environment without
// overriding existing variables, then reads Config from the environment.
// An unset language falls back to the locale.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = LanguageFromLocale(os.Getenv)
	}
	return &cfg, nil
}

// Describe lists the environment variables Config understands.
func Describe() string {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return desc
}

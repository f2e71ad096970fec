// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"default-secret-key-change-in-production"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

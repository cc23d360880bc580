// Package config loads runtime configuration from the environment, with an
// optional local .env file for development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable for the flipyard binaries.
type Config struct {
	Port       int    `env:"FLIPYARD_PORT" envDefault:"8080"`
	AdminKey   string `env:"FLIPYARD_ADMIN_KEY"`
	Seed       int64  `env:"FLIPYARD_SEED"` // 0 = non-deterministic
	LedgerPath string `env:"FLIPYARD_LEDGER_PATH"`
	LogLevel   string `env:"FLIPYARD_LOG_LEVEL" envDefault:"info"`

	// Autopilot settings.
	APIBaseURL      string `env:"FLIPYARD_API_URL" envDefault:"http://localhost:8080"`
	AutopilotPeriod int    `env:"FLIPYARD_AUTOPILOT_PERIOD" envDefault:"5"` // seconds between cycles
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}

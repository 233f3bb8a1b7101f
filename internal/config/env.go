package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for the calculator shells.
type Config struct {
	AppID        string  `env:"CALC_APP_ID" envDefault:"com.swift-calc.gui"`
	WindowWidth  float32 `env:"CALC_WINDOW_WIDTH" envDefault:"375"`
	WindowHeight float32 `env:"CALC_WINDOW_HEIGHT" envDefault:"667"`
	LogPresses   bool    `env:"CALC_LOG_PRESSES" envDefault:"false"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %gx%g", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

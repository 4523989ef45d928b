package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Client side.
	BackendURL string `env:"TIFFIN_BACKEND_URL" envDefault:"http://localhost:8001"`
	StorePath  string `env:"TIFFIN_STORE_PATH"`
	Lang       string `env:"TIFFIN_LANG" envDefault:"en"`

	// Fake backend.
	Port      string `env:"PORT" envDefault:"8001"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return parse()
}

func parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}
	return &cfg, nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tiffin", "state.db")
	}
	return filepath.Join(home, ".tiffin", "state.db")
}

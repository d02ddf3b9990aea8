package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// Load reads configuration from environment variables and an optional .env file
func Load() (models.Config, error) {
	_ = godotenv.Load()

	var cfg models.Config

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	cfg.Port = k.Int("PORT")
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	cfg.Env = strings.TrimSpace(k.String("ENV"))
	if cfg.Env == "" {
		cfg.Env = "dev"
	}

	cfg.DB.DSN = k.String("DSN")
	cfg.DB.DEVDSN = k.String("DEV_DSN")

	if cfg.Env == "live" && cfg.DB.DSN == "" {
		return cfg, errors.New("DSN is required in live mode")
	}
	if cfg.Env != "live" && cfg.DB.DEVDSN == "" {
		return cfg, errors.New("DEV_DSN is required in dev mode")
	}

	return cfg, nil
}

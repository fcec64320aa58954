package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"feedbrief/internal/catalog"
)

type Config struct {
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	CacheTimeout time.Duration `env:"CACHE_TIMEOUT" envDefault:"20s"`
	OutputDir    string        `env:"OUTPUT_DIR"    envDefault:"."`
	RefreshCron  string        `env:"REFRESH_CRON"`
	ItemLimit    int           `env:"ITEM_LIMIT"    envDefault:"5"`
}

// Load reads the environment, after loading a .env file when one exists.
// An ItemLimit outside 1..MaxItems is clamped to the default.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ItemLimit < 1 || cfg.ItemLimit > catalog.MaxItems {
		cfg.ItemLimit = catalog.DefaultItems
	}

	return cfg, nil
}

package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults for rangekit. Flags override them.
type Config struct {
	// Type is the numeric width used when --type is not given.
	Type string `env:"RANGEKIT_TYPE" envDefault:"int64"`
	// Count is how many values `sample` draws when --count is not given.
	Count int `env:"RANGEKIT_COUNT" envDefault:"1"`
	// Seed makes sampling reproducible; 0 means seed from entropy.
	Seed int64 `env:"RANGEKIT_SEED"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from CONFIG_PATH (fallback "./config.yaml") and
// environment variables. Priority: ENV > YAML > defaults (via env-default tags).
// If the fallback file does not exist, configuration comes from ENV and
// defaults only; a missing explicit CONFIG_PATH is an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat("./config.yaml"); err == nil {
		return LoadFile("./config.yaml")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads configuration from the YAML file at path plus environment
// variables. The file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

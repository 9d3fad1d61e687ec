package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// searchPaths are tried in order when CONFIG_PATH is unset. The format
// follows the extension; YAML and TOML are both accepted.
var searchPaths = []string{
	"./config.yaml",
	"./config.toml",
	"/etc/lifelog/config.yaml",
	"/etc/lifelog/config.toml",
}

// Load reads configuration from a file and environment variables.
// Priority: ENV > file > defaults (via env-default tags).
// The file named by CONFIG_PATH must exist. Without CONFIG_PATH the first
// existing file in searchPaths is used, and if there is none the
// configuration comes from ENV and defaults only.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads the file at path, applies ENV overrides and validates.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
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

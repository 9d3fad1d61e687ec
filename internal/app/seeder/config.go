package seeder

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo timeline generation settings.
type Config struct {
	Days      int    `yaml:"days"       env:"SEEDER_DAYS"       env-default:"14"`
	PerDay    int    `yaml:"per_day"    env:"SEEDER_PER_DAY"    env-default:"40"`
	Seed      int64  `yaml:"seed"       env:"SEEDER_SEED"       env-default:"1"`
	Until     string `yaml:"until"      env:"SEEDER_UNTIL"`
	BatchSize int    `yaml:"batch_size" env:"SEEDER_BATCH_SIZE" env-default:"500"`
	DryRun    bool   `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LastDay returns the last generated day: Until when set, else today in UTC.
func (c Config) LastDay(now time.Time) (time.Time, error) {
	if c.Until == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, c.Until)
	if err != nil {
		return time.Time{}, fmt.Errorf("seeder config: until %q: want YYYY-MM-DD", c.Until)
	}
	return t, nil
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

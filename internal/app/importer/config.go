package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds archive import settings.
type Config struct {
	FileRoot  string `yaml:"file_root"  env:"IMPORT_FILE_ROOT"  env-default:"./archives"`
	BatchSize int    `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"500"`
	DryRun    bool   `yaml:"dry_run"    env:"IMPORT_DRY_RUN"`
	Force     bool   `yaml:"force"      env:"IMPORT_FORCE"`
}

// LoadConfig reads config from YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}
	return &cfg, nil
}

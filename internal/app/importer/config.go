package importer

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/svenska-backend/internal/domain"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

// Config holds import pipeline settings.
type Config struct {
	SvEnPath   string        `yaml:"sv_en_path" env:"IMPORT_SV_EN_PATH"`
	EnSvPath   string        `yaml:"en_sv_path" env:"IMPORT_EN_SV_PATH"`
	Lemmatizer string        `yaml:"lemmatizer" env:"IMPORT_LEMMATIZER" env-default:"golem"`
	Workers    int           `yaml:"workers"    env:"IMPORT_WORKERS"    env-default:"4"`
	BatchSize  int           `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"1000"`
	Timeout    time.Duration `yaml:"timeout"    env:"IMPORT_TIMEOUT"    env-default:"30m"`
	DryRun     bool          `yaml:"dry_run"    env:"IMPORT_DRY_RUN"`
}

// LoadConfig reads import configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings a run cannot start without.
func (c Config) Validate() error {
	var errs []domain.FieldError

	if c.SvEnPath == "" {
		errs = append(errs, domain.FieldError{Field: "sv_en_path", Message: "required"})
	}
	if c.EnSvPath == "" {
		errs = append(errs, domain.FieldError{Field: "en_sv_path", Message: "required"})
	}
	switch c.Lemmatizer {
	case lemma.BackendGolem, lemma.BackendSnowball:
	default:
		errs = append(errs, domain.FieldError{Field: "lemmatizer", Message: fmt.Sprintf("unknown backend %q", c.Lemmatizer)})
	}
	if c.Workers < 1 {
		errs = append(errs, domain.FieldError{Field: "workers", Message: "must be at least 1"})
	}
	if c.BatchSize < 1 {
		errs = append(errs, domain.FieldError{Field: "batch_size", Message: "must be at least 1"})
	}
	if c.Timeout <= 0 {
		errs = append(errs, domain.FieldError{Field: "timeout", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

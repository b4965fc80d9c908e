package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendBolt     Backend = "bolt"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Config is the runtime configuration shared by the server and the CLI.
type Config struct {
	HTTPAddr      string        `env:"INFERNO_HTTP_ADDR" envDefault:":8080"`
	NotifyAddr    string        `env:"INFERNO_NOTIFY_ADDR"`
	CORSOrigin    string        `env:"INFERNO_CORS_ORIGIN" envDefault:"*"`
	SaveBackend   Backend       `env:"INFERNO_SAVE_BACKEND" envDefault:"bolt"`
	DBDSN         string        `env:"INFERNO_DB_DSN"`
	BoltPath      string        `env:"INFERNO_BOLT_PATH" envDefault:"infernocorp.db"`
	SQLitePath    string        `env:"INFERNO_SQLITE_PATH" envDefault:"infernocorp.sqlite"`
	MigrationsDir string        `env:"INFERNO_MIGRATIONS_DIR"`
	Seed          int64         `env:"INFERNO_SEED"`
	DayDuration   time.Duration `env:"INFERNO_DAY_DURATION" envDefault:"5m"`
	CatalogPath   string        `env:"INFERNO_CATALOG_PATH"`
	LogLevel      string        `env:"INFERNO_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"INFERNO_LOG_FORMAT" envDefault:"console"`
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.SaveBackend {
	case BackendMemory, BackendBolt, BackendSQLite:
	case BackendPostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("INFERNO_DB_DSN is required for the %s backend", c.SaveBackend)
		}
	default:
		return fmt.Errorf("unknown save backend %q", c.SaveBackend)
	}
	if c.DayDuration <= 0 {
		return fmt.Errorf("INFERNO_DAY_DURATION must be positive, got %s", c.DayDuration)
	}
	return nil
}

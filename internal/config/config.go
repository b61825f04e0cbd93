package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultSecret = "dev-secret-change-in-production"

var (
	ErrDefaultSecret     = errors.New("SESSION_SECRET must be set in production environment")
	ErrUnsupportedDriver = errors.New("unsupported DATABASE_DRIVER")
	ErrInvalidTTL        = errors.New("session TTLs must be positive")
)

type Config struct {
	Port     string   `env:"PORT" envDefault:"8080"`
	Env      string   `env:"ENV" envDefault:"development"`
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
	KDF      KDF      `envPrefix:"KDF_"`
}

// Database selects the SQL driver and its DSN. Supported drivers are
// "sqlite3" and "mysql"; MySQL DSNs need parseTime=true.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite3"`
	DSN    string `env:"DSN" envDefault:"file:devdiary.db?_foreign_keys=on"`
}

type Session struct {
	Secret      string        `env:"SECRET" envDefault:"dev-secret-change-in-production"`
	TTL         time.Duration `env:"TTL" envDefault:"12h"`
	RememberTTL time.Duration `env:"REMEMBER_TTL" envDefault:"720h"`
	CookieName  string        `env:"COOKIE_NAME" envDefault:"devdiary_session"`
}

// KDF holds the Argon2id cost parameters used for new password hashes.
type KDF struct {
	Time        uint32 `env:"TIME" envDefault:"3"`
	Memory      uint32 `env:"MEMORY" envDefault:"65536"`
	Parallelism uint8  `env:"PARALLELISM" envDefault:"2"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.IsProduction() && c.Session.Secret == defaultSecret {
		return ErrDefaultSecret
	}

	switch c.Database.Driver {
	case "sqlite3", "mysql":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}

	if c.Session.TTL <= 0 || c.Session.RememberTTL <= 0 {
		return ErrInvalidTTL
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

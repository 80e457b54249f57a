// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// DatabaseURL selects the postgres adapter. When empty the server
	// falls back to the embedded sqlite database at DatabasePath.
	DatabaseURL    string `env:"DATABASE_URL"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"db/todoapi.db"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"db/migrations"`

	PostgresMigrationsPath string `env:"PG_MIGRATIONS_PATH" envDefault:"infra/migrations"`

	// RedisURL selects the redis cache. When empty the server uses the
	// in-process cache.
	RedisURL string `env:"REDIS_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	OTLPEndpoint string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	MetricsPort  string `env:"METRICS_PORT" envDefault:"9090"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

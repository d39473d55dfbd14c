package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures process-level settings for the registrar command.
type Config struct {
	LogLevel         string `env:"REGISTRAR_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"REGISTRAR_LOG_FORMAT" envDefault:"text"`
	SeedFile         string `env:"REGISTRAR_SEED_FILE"`
	MetricsNamespace string `env:"REGISTRAR_METRICS_NAMESPACE" envDefault:"registrar"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid REGISTRAR_LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid REGISTRAR_LOG_FORMAT %q", c.LogFormat)
	}
	if c.MetricsNamespace == "" {
		return fmt.Errorf("REGISTRAR_METRICS_NAMESPACE cannot be empty")
	}
	return nil
}

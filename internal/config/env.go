package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr        string   `env:"PILLAR_API_ADDR" envDefault:":8080"`
	Env         string   `env:"PILLAR_API_ENV" envDefault:"development"`
	CORSOrigins []string `env:"PILLAR_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// IsProduction reports whether the service runs in release mode.
func (c ServerConfig) IsProduction() bool { return c.Env == "production" }

// LoadServerConfig reads the server settings from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds HTTP server settings read from the environment.
type Config struct {
	Addr         string        `env:"COAST_ADDR" envDefault:":8080"`
	LogLevel     string        `env:"COAST_LOG_LEVEL" envDefault:"info"`
	Workers      int           `env:"COAST_WORKERS" envDefault:"0"`
	ReadTimeout  time.Duration `env:"COAST_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"COAST_WRITE_TIMEOUT" envDefault:"30s"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

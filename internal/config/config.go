// Package config loads the serve command's configuration from the
// environment. Flags override these values at the CLI layer.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backend names accepted by AUTOMAT_STORE.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config holds the server configuration.
type Config struct {
	Addr          string `env:"AUTOMAT_ADDR" envDefault:":8200"`
	Store         string `env:"AUTOMAT_STORE" envDefault:"memory"`
	DataDir       string `env:"AUTOMAT_DATA_DIR" envDefault:".automat/machines"`
	RedisAddr     string `env:"AUTOMAT_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"AUTOMAT_REDIS_PASSWORD"`
	RedisDB       int    `env:"AUTOMAT_REDIS_DB" envDefault:"0"`
	Debug         bool   `env:"AUTOMAT_DEBUG"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch cfg.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q (want memory, file or redis)", cfg.Store)
	}
	return cfg, nil
}

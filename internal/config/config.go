package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all depthjournal runtime configuration, loaded from the
// environment.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Bind   string `envconfig:"DEPTHJOURNAL_BIND" default:"127.0.0.1"`
	Port   int    `envconfig:"DEPTHJOURNAL_PORT" default:"8642"`

	// Empty means resolve at runtime via store.DefaultDBPath().
	DBPath string `envconfig:"DEPTHJOURNAL_DB"`
}

// Load reads the config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ListenAddr returns the bind:port address string.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

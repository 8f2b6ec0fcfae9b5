package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv reads configuration from environment variables using the `env`
// and `envPrefix` struct tags declared on StructuredConfig.
func parseEnv(cfg *StructuredConfig) error {
	return env.Parse(cfg)
}

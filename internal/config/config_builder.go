package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultTokenDuration      = time.Hour
	defaultResetTokenDuration = 2 * time.Hour
	defaultRequestTimeout     = 30 * time.Second
	defaultTokenSweepInterval = time.Hour
)

// configBuilder accumulates configuration layers in priority order and then
// merges them into a single StructuredConfig. The first error encountered in
// any step short-circuits the remaining steps and is reported from build().
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// withEnv loads configuration from environment variables.
func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// withFlags loads configuration from command-line flags.
func (b *configBuilder) withFlags() *configBuilder {
	if b.err != nil {
		return b
	}

	cfg, err := parseFlags()
	if err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// withJSON loads configuration from a JSON file if a path was provided by
// any of the previously loaded layers. Missing path is not an error: the
// JSON layer is simply skipped.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	path := b.jsonFilePath()
	if path == "" {
		return b
	}

	cfg, err := parseJSONFile(path)
	if err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// jsonFilePath returns the last non-empty JSON file path across loaded layers.
func (b *configBuilder) jsonFilePath() string {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}

	return path
}

// build merges all collected layers (later layers override earlier ones),
// applies defaults for unset durations, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging config: %w", err)
		}
	}

	applyDefaults(merged)

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func applyDefaults(cfg *StructuredConfig) {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = defaultResetTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.TokenSweepInterval == 0 {
		cfg.Workers.TokenSweepInterval = defaultTokenSweepInterval
	}
}

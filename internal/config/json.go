// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration with JSON support for both string values
// ("1h30m") and numeric values interpreted as nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		d.Duration = time.Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return errors.New("invalid duration value")
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// structuredJSONConfig mirrors StructuredConfig with json tags and Duration
// wrappers, so config files may express durations as "30s"-style strings.
type structuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
		PublicBaseURL      string   `json:"public_base_url"`
	} `json:"app"`
	Storage struct {
		DB struct {
			DSN string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
	Mail struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Sender  string   `json:"sender"`
		Timeout Duration `json:"timeout"`
	} `json:"mail"`
	Workers struct {
		TokenSweepInterval Duration `json:"token_sweep_interval"`
	} `json:"workers"`
}

// parseJSONFile reads and decodes the JSON configuration file at path.
func parseJSONFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}

	jsonCfg := &structuredJSONConfig{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingConfigFile, err)
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = jsonCfg.App.TokenSignKey
	cfg.App.TokenIssuer = jsonCfg.App.TokenIssuer
	cfg.App.TokenDuration = jsonCfg.App.TokenDuration.Duration
	cfg.App.ResetTokenDuration = jsonCfg.App.ResetTokenDuration.Duration
	cfg.App.PublicBaseURL = jsonCfg.App.PublicBaseURL
	cfg.Storage.DB.DSN = jsonCfg.Storage.DB.DSN
	cfg.Server.HTTPAddress = jsonCfg.Server.HTTPAddress
	cfg.Server.RequestTimeout = jsonCfg.Server.RequestTimeout.Duration
	cfg.Mail.BaseURL = jsonCfg.Mail.BaseURL
	cfg.Mail.APIKey = jsonCfg.Mail.APIKey
	cfg.Mail.Sender = jsonCfg.Mail.Sender
	cfg.Mail.Timeout = jsonCfg.Mail.Timeout.Duration
	cfg.Workers.TokenSweepInterval = jsonCfg.Workers.TokenSweepInterval.Duration

	return cfg, nil
}

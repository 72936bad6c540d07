// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package config defines the service configuration and loads it through
// layered Koanf v2 sources: struct defaults, then an optional YAML file,
// then SOLACE_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/solace-labs/solace/internal/recommend"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `koanf:"addr"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimit is the per-IP request budget per minute. Zero disables
	// rate limiting.
	RateLimit int `koanf:"rate_limit"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig configures catalog loading.
type CatalogConfig struct {
	// Path is the JSON catalog file produced by the acquisition
	// pipeline.
	Path string `koanf:"path"`

	// ReloadInterval is how often the catalog is reloaded in the
	// background. Zero disables periodic reloads.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// ReloadMinInterval rate-limits manual reloads via the API.
	ReloadMinInterval time.Duration `koanf:"reload_min_interval"`
}

// RecommendConfig configures the matching engine.
type RecommendConfig struct {
	// Weights are the scoring weights. Tunable, but calibrated as a
	// set; see the recommend package docs before changing them.
	Weights recommend.Weights `koanf:"weights"`

	// MaxTopN caps the per-request result count.
	MaxTopN int `koanf:"max_top_n"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:               ":8642",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       15 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RateLimit:          120,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Path:              "data/catalog.json",
			ReloadInterval:    0, // Periodic reload is opt-in
			ReloadMinInterval: 30 * time.Second,
		},
		Recommend: RecommendConfig{
			Weights: recommend.DefaultWeights(),
			MaxTopN: 50,
		},
	}
}

// Validate checks invariants that would otherwise surface as confusing
// runtime behavior.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	if c.Recommend.MaxTopN <= 0 {
		return fmt.Errorf("recommend.max_top_n must be positive")
	}
	w := c.Recommend.Weights
	if w.BeneficialTrait <= 0 || w.NameKeyword < 0 || w.HobbyMatch < 0 || w.Promotion < 0 || w.AvoidPenalty < 0 {
		return fmt.Errorf("recommend.weights out of range")
	}
	return nil
}

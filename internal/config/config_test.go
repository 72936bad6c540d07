// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace/internal/recommend"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8642", cfg.Server.Addr)
	assert.Equal(t, recommend.DefaultWeights(), cfg.Recommend.Weights)
	assert.Equal(t, 50, cfg.Recommend.MaxTopN)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative rate limit", func(c *Config) { c.Server.RateLimit = -1 }},
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "" }},
		{"zero max top n", func(c *Config) { c.Recommend.MaxTopN = 0 }},
		{"zero beneficial weight", func(c *Config) { c.Recommend.Weights.BeneficialTrait = 0 }},
		{"negative avoid penalty", func(c *Config) { c.Recommend.Weights.AvoidPenalty = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  addr: ":9000"
  rate_limit: 60
catalog:
  path: /srv/solace/catalog.json
  reload_interval: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	// Environment wins over the file.
	t.Setenv("SOLACE_SERVER_ADDR", ":9100")
	t.Setenv("SOLACE_LOG_LEVEL", "debug")
	t.Setenv("SOLACE_WEIGHT_PROMOTION", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, 60, cfg.Server.RateLimit)
	assert.Equal(t, "/srv/solace/catalog.json", cfg.Catalog.Path)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.ReloadInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Recommend.Weights.Promotion)
}

func TestLoadIgnoresUnknownEnvVars(t *testing.T) {
	t.Setenv("SOLACE_SOMETHING_UNRELATED", "noise")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

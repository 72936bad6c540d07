// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/solace/config.yaml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "SOLACE_CONFIG"

// envPrefix is stripped from environment variables before mapping.
const envPrefix = "SOLACE_"

// envMappings maps environment variable names (lowercased, prefix
// stripped) to koanf paths. Multi-word leaf keys need explicit entries
// because underscores are ambiguous between section and key.
var envMappings = map[string]string{
	"server_addr":                  "server.addr",
	"server_read_timeout":          "server.read_timeout",
	"server_write_timeout":         "server.write_timeout",
	"server_shutdown_timeout":      "server.shutdown_timeout",
	"server_rate_limit":            "server.rate_limit",
	"server_cors_allowed_origins":  "server.cors_allowed_origins",
	"log_level":                    "logging.level",
	"log_format":                   "logging.format",
	"log_caller":                   "logging.caller",
	"catalog_path":                 "catalog.path",
	"catalog_reload_interval":      "catalog.reload_interval",
	"catalog_reload_min_interval":  "catalog.reload_min_interval",
	"recommend_max_top_n":          "recommend.max_top_n",
	"weight_beneficial_trait":      "recommend.weights.beneficial_trait",
	"weight_age_match":             "recommend.weights.age_match",
	"weight_name_keyword":          "recommend.weights.name_keyword",
	"weight_hobby_match":           "recommend.weights.hobby_match",
	"weight_promotion":             "recommend.weights.promotion",
	"weight_avoid_penalty":         "recommend.weights.avoid_penalty",
}

// Load builds the configuration from layered sources with precedence
// ENV > file > defaults, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file path, honoring
// the SOLACE_CONFIG override, or empty if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps SOLACE_* variable names to koanf paths. Unknown
// variables are dropped so unrelated environment noise cannot override
// configuration.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if path, ok := envMappings[key]; ok {
		return path
	}
	return ""
}

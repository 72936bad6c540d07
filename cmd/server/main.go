// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package main is the entry point for the Solace server.
//
// Solace recommends wellness activities for people going through hard
// life situations (bereavement, breakup, anxiety, loneliness, work
// stress, grief) and synthesizes a short empathic message alongside the
// ranked matches.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 sources (defaults, YAML file, SOLACE_* env)
//  2. Logging: global zerolog logger
//  3. Knowledge base: the static situation-to-trait mapping
//  4. Catalog: load and tag the activity catalog JSON, swap into the store
//  5. Engine, composer and workflows: the recommendation pipeline
//  6. HTTP server: Chi router under a suture supervision tree
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - SOLACE_* environment variables
//   - Config file (config.yaml, or SOLACE_CONFIG)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests up to the
// configured shutdown timeout, then stops the supervision tree.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/solace-labs/solace/internal/api"
	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/config"
	"github.com/solace-labs/solace/internal/knowledge"
	"github.com/solace-labs/solace/internal/logging"
	"github.com/solace-labs/solace/internal/message"
	"github.com/solace-labs/solace/internal/metrics"
	"github.com/solace-labs/solace/internal/recommend"
	"github.com/solace-labs/solace/internal/supervisor"
	"github.com/solace-labs/solace/internal/workflow"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr).
		Msg("starting solace")

	base := knowledge.NewBase()
	tagger := catalog.NewTagger(base)
	loader := catalog.NewLoader(tagger)
	store := catalog.NewStore()

	// A missing catalog file is not fatal: the service starts empty and
	// serves no matches until a reload succeeds.
	if activities, stats, err := loader.LoadFile(cfg.Catalog.Path); err != nil {
		metrics.ObserveCatalogLoadError()
		logging.Warn().Err(err).Str("path", cfg.Catalog.Path).Msg("initial catalog load failed, starting empty")
	} else {
		store.Replace(activities, stats)
		metrics.ObserveCatalogLoad(stats.Loaded, stats.Rejected)
		logging.Info().
			Int("loaded", stats.Loaded).
			Int("duplicates", stats.Duplicates).
			Int("rejected", stats.Rejected).
			Msg("catalog loaded")
	}

	engine := recommend.NewEngine(base, store, cfg.Recommend.Weights)
	composer := message.NewComposer()
	recommender := workflow.NewRecommender(engine, composer)
	hr := workflow.NewHRWorkflow(recommender)

	handler := api.NewHandler(cfg, base, store, loader, recommender, hr)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)

	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Catalog.ReloadInterval > 0 {
		tree.AddCatalogService(supervisor.NewCatalogReloadService(
			loader, store, cfg.Catalog.Path, cfg.Catalog.ReloadInterval))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", cfg.Server.Addr).Msg("solace ready")

	if err := <-errCh; err != nil && err != context.Canceled {
		logging.Error().Err(err).Msg("supervisor terminated with error")
		os.Exit(1)
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service did not stop in time")
		}
	}

	logging.Info().Msg("solace stopped")
}

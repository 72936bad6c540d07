// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package supervisor

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/logging"
	"github.com/solace-labs/solace/internal/metrics"
)

// CatalogReloadService reloads the catalog file on a fixed interval and
// swaps the fresh snapshot into the store. A failed load keeps the
// previous snapshot active; the service itself keeps running.
type CatalogReloadService struct {
	loader   *catalog.Loader
	store    *catalog.Store
	path     string
	interval time.Duration
}

// NewCatalogReloadService creates the periodic reloader.
func NewCatalogReloadService(loader *catalog.Loader, store *catalog.Store, path string, interval time.Duration) *CatalogReloadService {
	return &CatalogReloadService{
		loader:   loader,
		store:    store,
		path:     path,
		interval: interval,
	}
}

// Serve implements suture.Service. An interval of zero means periodic
// reload is disabled; the service marks itself terminated so suture
// does not restart it.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.reload()
		}
	}
}

func (s *CatalogReloadService) reload() {
	activities, stats, err := s.loader.LoadFile(s.path)
	if err != nil {
		metrics.ObserveCatalogLoadError()
		logging.Error().Err(err).Str("path", s.path).Msg("periodic catalog reload failed")
		return
	}

	s.store.Replace(activities, stats)
	metrics.ObserveCatalogLoad(stats.Loaded, stats.Rejected)
	logging.Info().
		Int("loaded", stats.Loaded).
		Int("duplicates", stats.Duplicates).
		Int("rejected", stats.Rejected).
		Msg("catalog reloaded")
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *CatalogReloadService) String() string {
	return "catalog-reloader"
}

// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the full HTTP surface.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(Observability())
	r.Use(CORS(h.cfg.Server.CORSAllowedOrigins))
	r.Use(RateLimit(h.cfg.Server.RateLimit))

	r.Get("/healthz", h.HandleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", h.HandleRecommendations)
		r.Post("/hr/cards", h.HandleHRCards)
		r.Post("/hr/accept", h.HandleHRAccept)
		r.Post("/catalog/reload", h.HandleCatalogReload)
		r.Get("/catalog/stats", h.HandleCatalogStats)
		r.Get("/situations", h.HandleSituations)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed", nil)
	})

	return r
}

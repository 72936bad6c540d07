// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/config"
	"github.com/solace-labs/solace/internal/knowledge"
	"github.com/solace-labs/solace/internal/logging"
	"github.com/solace-labs/solace/internal/metrics"
	"github.com/solace-labs/solace/internal/recommend"
	"github.com/solace-labs/solace/internal/validation"
	"github.com/solace-labs/solace/internal/workflow"
)

// Handler carries the wired service components used by the endpoints.
type Handler struct {
	cfg         *config.Config
	base        *knowledge.Base
	store       *catalog.Store
	loader      *catalog.Loader
	recommender *workflow.Recommender
	hr          *workflow.HRWorkflow

	// reloadLimiter throttles manual catalog reloads.
	reloadLimiter *rate.Limiter
}

// NewHandler wires the endpoint handlers.
func NewHandler(
	cfg *config.Config,
	base *knowledge.Base,
	store *catalog.Store,
	loader *catalog.Loader,
	recommender *workflow.Recommender,
	hr *workflow.HRWorkflow,
) *Handler {
	minInterval := cfg.Catalog.ReloadMinInterval
	if minInterval <= 0 {
		minInterval = time.Second
	}
	return &Handler{
		cfg:           cfg,
		base:          base,
		store:         store,
		loader:        loader,
		recommender:   recommender,
		hr:            hr,
		reloadLimiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation. It writes the error response itself and reports whether
// the handler should proceed.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "request body is not valid JSON", nil)
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, verr.Error(), verr.Fields)
		return false
	}
	return true
}

// HandleRecommendations serves POST /api/v1/recommendations.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	topN := req.TopN
	if max := h.cfg.Recommend.MaxTopN; topN > max {
		topN = max
	}

	result, err := h.recommender.Process(r.Context(), req.Profile, req.Situation, topN)
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	metrics.ObserveRecommendation(string(req.Situation.Category), len(result.Matches), result.MessageLength)
	respondJSON(w, r, http.StatusOK, result)
}

// HandleHRCards serves POST /api/v1/hr/cards.
func (h *Handler) HandleHRCards(w http.ResponseWriter, r *http.Request) {
	var req HRCardsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	cards, err := h.hr.CreateCards(r.Context(), req.Profile, req.Situation)
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{"cards": cards})
}

// HandleHRAccept serves POST /api/v1/hr/accept.
func (h *Handler) HandleHRAccept(w http.ResponseWriter, r *http.Request) {
	var req HRAcceptRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	notice, err := h.hr.Accept(r.Context(), req.Profile, req.Situation, req.Card)
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, notice)
}

// HandleCatalogReload serves POST /api/v1/catalog/reload. Reloads are
// rate limited so a misbehaving client cannot hammer the filesystem.
func (h *Handler) HandleCatalogReload(w http.ResponseWriter, r *http.Request) {
	if !h.reloadLimiter.Allow() {
		respondError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests,
			"catalog was reloaded recently, try again later", nil)
		return
	}

	activities, stats, err := h.loader.LoadFile(h.cfg.Catalog.Path)
	if err != nil {
		metrics.ObserveCatalogLoadError()
		logging.Ctx(r.Context()).Error().Err(err).Str("path", h.cfg.Catalog.Path).Msg("catalog reload failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeCatalogLoad,
			"failed to reload catalog", nil)
		return
	}

	h.store.Replace(activities, stats)
	metrics.ObserveCatalogLoad(stats.Loaded, stats.Rejected)
	logging.Ctx(r.Context()).Info().
		Int("loaded", stats.Loaded).
		Int("duplicates", stats.Duplicates).
		Int("rejected", stats.Rejected).
		Msg("catalog reloaded")

	respondJSON(w, r, http.StatusOK, stats)
}

// HandleCatalogStats serves GET /api/v1/catalog/stats.
func (h *Handler) HandleCatalogStats(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	respondJSON(w, r, http.StatusOK, CatalogStatsResponse{
		Entries:    len(snap.Activities),
		Duplicates: snap.Stats.Duplicates,
		Rejected:   snap.Stats.Rejected,
		LoadedAt:   snap.LoadedAt.UTC().Format(time.RFC3339),
	})
}

// HandleSituations serves GET /api/v1/situations: the known situation
// categories and why their trait profiles look the way they do.
func (h *Handler) HandleSituations(w http.ResponseWriter, r *http.Request) {
	cats := h.base.Categories()
	infos := make([]SituationInfo, 0, len(cats))
	for _, c := range cats {
		infos = append(infos, SituationInfo{
			Category:  string(c),
			Rationale: h.base.Lookup(c).Rationale,
		})
	}
	respondJSON(w, r, http.StatusOK, map[string]interface{}{"situations": infos})
}

// HandleHealthz serves GET /healthz.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"healthy":         true,
		"catalog_entries": h.store.Len(),
	})
}

// respondRecommendError maps engine errors to API errors.
func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, recommend.ErrNegativeTopN) {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
	respondError(w, r, http.StatusInternalServerError, ErrCodeRecommendation,
		"failed to build recommendation", nil)
}

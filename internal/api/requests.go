// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package api

import (
	"github.com/solace-labs/solace/internal/recommend"
	"github.com/solace-labs/solace/internal/workflow"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	Profile   recommend.Profile   `json:"profile" validate:"required"`
	Situation recommend.Situation `json:"situation" validate:"required"`

	// TopN caps the number of matches returned. Zero means the default;
	// negative values are rejected during validation.
	TopN int `json:"top_n" validate:"min=0"`
}

// HRCardsRequest is the body of POST /api/v1/hr/cards.
type HRCardsRequest struct {
	Profile   recommend.Profile   `json:"profile" validate:"required"`
	Situation recommend.Situation `json:"situation" validate:"required"`
}

// HRAcceptRequest is the body of POST /api/v1/hr/accept. The card comes
// back verbatim from a prior cards call.
type HRAcceptRequest struct {
	Profile   recommend.Profile   `json:"profile" validate:"required"`
	Situation recommend.Situation `json:"situation" validate:"required"`
	Card      workflow.Card       `json:"card" validate:"required"`
}

// CatalogStatsResponse is the payload of GET /api/v1/catalog/stats.
type CatalogStatsResponse struct {
	Entries    int    `json:"entries"`
	Duplicates int    `json:"duplicates"`
	Rejected   int    `json:"rejected"`
	LoadedAt   string `json:"loaded_at"`
}

// SituationInfo describes one known situation category for GET
// /api/v1/situations.
type SituationInfo struct {
	Category  string `json:"category"`
	Rationale string `json:"rationale"`
}

// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package recommend

import (
	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/knowledge"
)

// Profile is a person's self-reported profile. It is created once per
// request and treated as immutable for the duration of the call; nothing
// in this core persists it.
type Profile struct {
	// PersonID is an opaque identity token. May be anonymous.
	PersonID string `json:"person_id"`

	// Name is the display name used in synthesized messages.
	Name string `json:"name" validate:"required"`

	// Age in years.
	Age int `json:"age" validate:"min=0"`

	// Gender is an open string; no enum is enforced.
	Gender string `json:"gender"`

	// Hobbies are free-text labels, matched case-insensitively.
	Hobbies []string `json:"hobbies"`

	// Goals are free-text goal statements; the first one may appear in
	// the synthesized message.
	Goals []string `json:"goals"`
}

// Situation describes the life event a recommendation is requested for.
type Situation struct {
	// Category is the coarse classification. Categories absent from the
	// knowledge base are legal and degrade to generic behavior.
	Category knowledge.Category `json:"category" validate:"required"`

	// Subtype refines the category ("parents", "recent", "burnout").
	// Unknown subtypes fall back to the category-level phrase.
	Subtype string `json:"subtype"`

	// Context is free text kept for traceability only; it never
	// influences scoring.
	Context string `json:"context"`
}

// ScoredMatch is one ranked catalog entry with its score breakdown.
// Created per request, never persisted.
type ScoredMatch struct {
	// Activity is the matched catalog entry.
	Activity catalog.Activity `json:"activity"`

	// Score is the signed match score. Only positive scores survive
	// filtering, but intermediate values can be negative.
	Score int `json:"score"`

	// Reasons are human-readable explanations of the score components,
	// in the order they were applied.
	Reasons []string `json:"reasons"`
}

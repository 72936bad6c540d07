// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import "github.com/solace-labs/solace/internal/knowledge"

// Activity is one entry of the wellness activity catalog.
//
// The Traits and Situations fields are derived by the Tagger during the
// load pass; after loading, entries are treated as read-only for the
// lifetime of the catalog snapshot.
type Activity struct {
	// ID is the catalog identifier, unique within a load.
	ID string `json:"id"`

	// Name is the display name of the activity.
	Name string `json:"name"`

	// Category is the primary catalog category.
	Category string `json:"category"`

	// Subcategory is the secondary catalog category.
	Subcategory string `json:"subcategory"`

	// PriceFrom is the starting price.
	PriceFrom float64 `json:"price_from"`

	// URL points at the activity's page.
	URL string `json:"url"`

	// ImageURL points at the activity's promotional image.
	ImageURL string `json:"image_url"`

	// Promoted flags entries currently on promotion.
	Promoted bool `json:"promoted"`

	// Description is optional free text from the catalog source.
	Description string `json:"description,omitempty"`

	// Traits are the activity traits derived by the Tagger.
	Traits []string `json:"traits"`

	// Situations are the situation categories this activity is inferred
	// to help with, derived from Traits and the knowledge base.
	Situations []knowledge.Category `json:"situations"`
}

// HasTrait reports whether the activity carries the given trait.
func (a *Activity) HasTrait(trait string) bool {
	for _, t := range a.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

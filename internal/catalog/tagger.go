// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import (
	"strings"

	"github.com/solace-labs/solace/internal/knowledge"
)

// FallbackTrait is assigned when no keyword matches, so every entry has
// at least one trait and is never silently excluded from consideration.
const FallbackTrait = "general"

// traitVocabulary maps each activity trait to the keywords that indicate
// it. Matching is substring-based over the case-folded entry text.
// Substring matching is deliberately fuzzy (see MatchesKeyword); keep the
// vocabulary in sync with the knowledge base's beneficial sets.
var traitVocabulary = []struct {
	trait    string
	keywords []string
}{
	{"nature", []string{"ecolog", "nature", "hike", "trail", "park", "garden", "outdoor"}},
	{"water", []string{"aquatic", "pool", "swim", "spa", "water", "lake"}},
	{"exercise", []string{"sport", "gym", "swim", "fitness", "exercise", "workout"}},
	{"social", []string{"group", "club", "workshop", "class", "community"}},
	{"mindfulness", []string{"yoga", "meditation", "wellness", "relaxation", "mindfulness"}},
	{"low-stimulation", []string{"rest", "quiet", "retreat", "spa", "relax", "day pass"}},
	{"artistic-expression", []string{"art", "painting", "music", "theater", "craft", "creative"}},
	{"tourism", []string{"day pass", "getaway", "tour", "trip", "excursion"}},
}

// MatchesKeyword is the single keyword-match primitive used by the tagger
// and the matching engine. It is a plain case-sensitive substring test
// over already-folded text; callers fold their inputs first. Isolated
// here so a smarter matcher can replace it without touching scoring.
func MatchesKeyword(foldedText, keyword string) bool {
	return strings.Contains(foldedText, strings.ToLower(keyword))
}

// Tagger derives activity traits and applicable situation categories for
// catalog entries. It is stateless apart from the read-only knowledge
// base reference and safe for concurrent use.
type Tagger struct {
	base *knowledge.Base
}

// NewTagger creates a tagger backed by the given knowledge base.
func NewTagger(base *knowledge.Base) *Tagger {
	return &Tagger{base: base}
}

// Tag returns a copy of the activity with Traits and Situations
// populated. Derived fields are replaced, not appended, which makes
// tagging idempotent: tagging a tagged entry yields the same result.
func (t *Tagger) Tag(a Activity) Activity {
	blob := strings.ToLower(a.Name + " " + a.Category + " " + a.Subcategory + " " + a.Description)

	var traits []string
	for _, entry := range traitVocabulary {
		for _, kw := range entry.keywords {
			if MatchesKeyword(blob, kw) {
				traits = append(traits, entry.trait)
				break
			}
		}
	}
	if len(traits) == 0 {
		traits = []string{FallbackTrait}
	}
	a.Traits = traits
	a.Situations = t.inferSituations(traits)

	return a
}

// inferSituations returns the categories whose beneficial trait set
// intersects the given traits, in the base's deterministic order.
func (t *Tagger) inferSituations(traits []string) []knowledge.Category {
	var situations []knowledge.Category
	for _, category := range t.base.Categories() {
		profile := t.base.Lookup(category)
		if intersects(traits, profile.Beneficial) {
			situations = append(situations, category)
		}
	}
	return situations
}

// intersects reports whether the two string slices share an element.
func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

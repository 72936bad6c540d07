// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package knowledge holds the static mapping from life situations to the
// activity traits considered helpful (or harmful) for them.
//
// The base is the single source of truth for which traits benefit which
// situation category. It is built once at startup and never mutated, so
// concurrent requests read it without locking.
//
// Lookups never fail: an unknown category yields a zero-value TraitProfile,
// which downstream components must treat as "no signal" rather than an
// error (the engine then scores only on promotion, hobbies and name
// keywords, and the synthesizer falls back to generic phrasing).
package knowledge

import "sort"

// Category classifies the life event a person is going through.
type Category string

// Known situation categories. The set is extensible: adding a category is
// a matter of adding an entry to the profile table below.
const (
	CategoryBereavement Category = "bereavement"
	CategoryBreakup     Category = "breakup"
	CategoryAnxiety     Category = "anxiety"
	CategoryLoneliness  Category = "loneliness"
	CategoryWorkStress  Category = "work-stress"
	CategoryGrief       Category = "grief"
)

// TraitProfile describes what helps and what hurts for one situation
// category. The zero value means "no knowledge" and is what Lookup
// returns for unrecognized categories.
type TraitProfile struct {
	// Beneficial lists activity traits that help in this situation.
	Beneficial []string `json:"beneficial"`

	// Avoid lists activity traits that are counterproductive.
	Avoid []string `json:"avoid"`

	// Keywords are situation-relevant words matched against activity names.
	Keywords []string `json:"keywords"`

	// Rationale is a one-line explanation of why these traits were chosen.
	Rationale string `json:"rationale"`
}

// Base is the situation knowledge base.
type Base struct {
	profiles map[Category]TraitProfile
}

// NewBase constructs the built-in knowledge base.
func NewBase() *Base {
	return &Base{profiles: map[Category]TraitProfile{
		CategoryBereavement: {
			Beneficial: []string{"low-stimulation", "nature", "gentle-social", "mindfulness", "water"},
			Avoid:      []string{"high-stimulation", "competitive", "party"},
			Keywords:   []string{"rest", "quiet", "peace", "nature", "spa", "retreat", "hike"},
			Rationale:  "Loss calls for calm spaces to process grief",
		},
		CategoryBreakup: {
			Beneficial: []string{"exercise", "social", "artistic-expression", "nature", "water"},
			Avoid:      []string{"romantic", "couples"},
			Keywords:   []string{"sport", "group", "social", "art", "swim", "gym", "workshop"},
			Rationale:  "Physical movement and social connection help the healing",
		},
		CategoryAnxiety: {
			Beneficial: []string{"mindfulness", "gentle-exercise", "nature", "water", "low-stimulation"},
			Avoid:      []string{"high-stimulation", "crowds", "competitive"},
			Keywords:   []string{"yoga", "meditation", "swim", "spa", "relaxation", "quiet"},
			Rationale:  "Activities that settle the nervous system are key",
		},
		CategoryLoneliness: {
			Beneficial: []string{"social", "group", "club", "volunteering"},
			Avoid:      []string{"individual", "solitary"},
			Keywords:   []string{"group", "club", "workshop", "class", "social", "community"},
			Rationale:  "Building connection through shared interests",
		},
		CategoryWorkStress: {
			Beneficial: []string{"unwinding", "nature", "exercise", "spa", "water"},
			Avoid:      []string{"high-concentration", "competitive"},
			Keywords:   []string{"getaway", "rest", "spa", "nature", "sport", "vacation", "park"},
			Rationale:  "Active disconnection from the work environment",
		},
		CategoryGrief: {
			Beneficial: []string{"low-stimulation", "nature", "artistic-expression", "gentle-social"},
			Avoid:      []string{"high-stimulation", "parties"},
			Keywords:   []string{"quiet", "nature", "art", "hike", "support group"},
			Rationale:  "Room to process and honor the loss",
		},
	}}
}

// Lookup returns the trait profile for a category. Unknown categories
// yield the zero-value profile, never an error.
func (b *Base) Lookup(category Category) TraitProfile {
	return b.profiles[category]
}

// Known reports whether a category exists in the base.
func (b *Base) Known(category Category) bool {
	_, ok := b.profiles[category]
	return ok
}

// Categories returns all known categories in lexical order. The stable
// order matters: situation inference during tagging iterates this slice
// and must be deterministic.
func (b *Base) Categories() []Category {
	out := make([]Category, 0, len(b.profiles))
	for c := range b.profiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

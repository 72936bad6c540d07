// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package message

import (
	"strings"
	"testing"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/knowledge"
	"github.com/solace-labs/solace/internal/recommend"
)

func matchFor(activity catalog.Activity) recommend.ScoredMatch {
	return recommend.ScoredMatch{Activity: activity, Score: 30}
}

func TestComposeFullGrammar(t *testing.T) {
	composer := NewSeededComposer(1)

	profile := recommend.Profile{
		Name:    "Ricardo",
		Hobbies: []string{"swimming"},
		Goals:   []string{"Recover my peace of mind"},
	}
	situation := recommend.Situation{
		Category: knowledge.CategoryBereavement,
		Subtype:  "parents",
	}
	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID:          "a1",
		Name:        "Swimming Pool Day Pass",
		Subcategory: "Aquatics",
		Traits:      []string{"water", "low-stimulation"},
	})}

	msg := composer.Compose(profile, situation, matches)

	if !strings.HasPrefix(msg, "Ricardo, we know that right now you are facing the loss of your parents.") {
		t.Errorf("confrontation clause missing or wrong: %q", msg)
	}
	if !strings.Contains(msg, "leveraging your interest in swimming, we recommend Swimming Pool Day Pass") {
		t.Errorf("strong connection clause missing: %q", msg)
	}
	if !strings.Contains(msg, "water helps release built-up tension") {
		t.Errorf("benefit clause missing: %q", msg)
	}
	if !strings.Contains(msg, "A step toward recover my peace of mind.") {
		t.Errorf("goal clause missing or not lowercased: %q", msg)
	}
	if n := len([]rune(msg)); n > MaxLength {
		t.Errorf("message length %d exceeds %d", n, MaxLength)
	}
}

func TestComposeNoMatchesFallback(t *testing.T) {
	composer := NewSeededComposer(1)

	msg := composer.Compose(recommend.Profile{Name: "Ana"},
		recommend.Situation{Category: knowledge.CategoryAnxiety}, nil)

	want := "Ana, we are looking for the best options for you."
	if msg != want {
		t.Errorf("fallback = %q, want %q", msg, want)
	}
}

func TestComposeUnknownCategoryAndSubtype(t *testing.T) {
	composer := NewSeededComposer(1)

	profile := recommend.Profile{Name: "Ana"}
	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID: "a1", Name: "Forest Walk", Traits: []string{"general"},
	})}

	// Unknown category: fully generic phrases.
	msg := composer.Compose(profile,
		recommend.Situation{Category: knowledge.Category("unheard-of")}, matches)
	if !strings.Contains(msg, genericConfrontation) {
		t.Errorf("expected generic confrontation, got %q", msg)
	}
	if !strings.Contains(msg, genericCalming) {
		t.Errorf("expected generic calming, got %q", msg)
	}

	// Known category, unknown subtype: category-level confrontation.
	msg = composer.Compose(profile,
		recommend.Situation{Category: knowledge.CategoryBreakup, Subtype: "complicated"}, matches)
	if !strings.Contains(msg, "healing after a breakup") {
		t.Errorf("expected category-level confrontation, got %q", msg)
	}
}

func TestComposeCombinatoryConnection(t *testing.T) {
	composer := NewSeededComposer(1)

	profile := recommend.Profile{Name: "Ana", Hobbies: []string{"Chess"}}
	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID: "a1", Name: "Forest Walk", Traits: []string{"nature"},
	})}

	msg := composer.Compose(profile,
		recommend.Situation{Category: knowledge.CategoryAnxiety}, matches)
	if !strings.Contains(msg, "combining your interest in chess with something new, we suggest Forest Walk") {
		t.Errorf("combinatory connection missing: %q", msg)
	}
}

func TestComposeNoBenefitForGeneralTrait(t *testing.T) {
	composer := NewSeededComposer(1)

	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID: "a1", Name: "Plain Entry", Traits: []string{"general"},
	})}

	msg := composer.Compose(recommend.Profile{Name: "Ana"},
		recommend.Situation{Category: knowledge.CategoryAnxiety}, matches)
	if strings.Contains(msg, " — ") {
		t.Errorf("general trait must not produce a benefit clause: %q", msg)
	}
}

func TestComposeSeededDeterminism(t *testing.T) {
	profile := recommend.Profile{Name: "Ana"}
	situation := recommend.Situation{Category: knowledge.CategoryGrief}
	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID: "a1", Name: "Forest Walk", Traits: []string{"nature"},
	})}

	first := NewSeededComposer(42).Compose(profile, situation, matches)
	second := NewSeededComposer(42).Compose(profile, situation, matches)
	if first != second {
		t.Errorf("same seed produced different messages:\n%q\n%q", first, second)
	}
}

func TestComposeLengthInvariant(t *testing.T) {
	composer := NewSeededComposer(1)

	longName := strings.Repeat("Verylongname ", 40)
	tests := []struct {
		name    string
		profile recommend.Profile
		matches []recommend.ScoredMatch
	}{
		{
			name:    "long profile name",
			profile: recommend.Profile{Name: strings.Repeat("X", 600)},
			matches: []recommend.ScoredMatch{matchFor(catalog.Activity{ID: "a1", Name: "Entry", Traits: []string{"nature"}})},
		},
		{
			name:    "long activity name",
			profile: recommend.Profile{Name: "Ana", Goals: []string{"Find calm"}},
			matches: []recommend.ScoredMatch{matchFor(catalog.Activity{ID: "a1", Name: longName, Traits: []string{"nature"}})},
		},
		{
			name:    "multibyte runes never split",
			profile: recommend.Profile{Name: strings.Repeat("José-Ñandú-你好-🌊", 50)},
			matches: []recommend.ScoredMatch{matchFor(catalog.Activity{ID: "a1", Name: "Entry", Traits: []string{"water"}})},
		},
		{
			name:    "long fallback",
			profile: recommend.Profile{Name: strings.Repeat("é", 700)},
			matches: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := composer.Compose(tt.profile,
				recommend.Situation{Category: knowledge.CategoryAnxiety}, tt.matches)
			if n := len([]rune(msg)); n > MaxLength {
				t.Errorf("length %d exceeds %d", n, MaxLength)
			}
			// Valid UTF-8 throughout: converting round-trip must not lose runes.
			if strings.Contains(msg, "�") {
				t.Errorf("message contains replacement character: %q", msg)
			}
		})
	}
}

func TestComposeGoalSkippedWhenLong(t *testing.T) {
	composer := NewSeededComposer(1)

	// A name long enough to push the message past the goal threshold but
	// not past the truncation window.
	profile := recommend.Profile{
		Name:  strings.Repeat("N", 400),
		Goals: []string{"Find calm"},
	}
	matches := []recommend.ScoredMatch{matchFor(catalog.Activity{
		ID: "a1", Name: "Entry", Traits: []string{"general"},
	})}

	msg := composer.Compose(profile,
		recommend.Situation{Category: knowledge.CategoryAnxiety}, matches)
	if strings.Contains(msg, "A step toward") {
		t.Errorf("goal clause should be skipped past the length guard: %q", msg)
	}
}

func TestTruncatePrefersSentenceBoundary(t *testing.T) {
	// A period lands past the minimum cut position; the cut must keep it.
	head := strings.Repeat("a", 350) + "."
	msg := head + strings.Repeat("b", 300)

	got := truncate(msg)
	if got != head {
		t.Errorf("expected sentence-boundary cut to %d runes, got %d", len(head), len([]rune(got)))
	}
}

func TestTruncateWordBoundaryEllipsis(t *testing.T) {
	// No period at all: fall back to the last space plus ellipsis.
	msg := strings.Repeat("word ", 200)

	got := truncate(msg)
	if n := len([]rune(got)); n > MaxLength {
		t.Errorf("length %d exceeds %d", n, MaxLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
	if strings.HasSuffix(strings.TrimSuffix(got, "..."), " ") {
		t.Errorf("cut should land on the word boundary itself: %q", got)
	}
}

// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import (
	"reflect"
	"testing"

	"github.com/solace-labs/solace/internal/knowledge"
)

func newTestTagger() *Tagger {
	return NewTagger(knowledge.NewBase())
}

func TestTagDerivesTraits(t *testing.T) {
	tagger := newTestTagger()

	tests := []struct {
		name     string
		activity Activity
		want     []string
	}{
		{
			name: "swim lessons get water and exercise",
			activity: Activity{
				ID:       "a1",
				Name:     "Adult Swim Lessons",
				Category: "Sports",
			},
			want: []string{"water", "exercise"},
		},
		{
			name: "ecological hike gets nature",
			activity: Activity{
				ID:          "a2",
				Name:        "Guided Ecological Hike",
				Description: "A quiet walk through the reserve",
			},
			want: []string{"nature", "low-stimulation"},
		},
		{
			name: "no keyword yields fallback trait",
			activity: Activity{
				ID:   "a3",
				Name: "Bingo Night",
			},
			want: []string{FallbackTrait},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagger.Tag(tt.activity)
			if !reflect.DeepEqual(got.Traits, tt.want) {
				t.Errorf("Traits = %v, want %v", got.Traits, tt.want)
			}
		})
	}
}

func TestTagIdempotent(t *testing.T) {
	tagger := newTestTagger()

	activity := Activity{
		ID:          "a1",
		Name:        "Yoga in the Park",
		Category:    "Wellness",
		Description: "Group yoga sessions outdoors",
	}

	once := tagger.Tag(activity)
	twice := tagger.Tag(once)

	if !reflect.DeepEqual(once.Traits, twice.Traits) {
		t.Errorf("re-tagging changed traits: %v vs %v", once.Traits, twice.Traits)
	}
	if !reflect.DeepEqual(once.Situations, twice.Situations) {
		t.Errorf("re-tagging changed situations: %v vs %v", once.Situations, twice.Situations)
	}
}

func TestTagInfersSituationsDeterministically(t *testing.T) {
	tagger := newTestTagger()

	activity := Activity{ID: "a1", Name: "Spa Day Pass", Category: "Wellness"}

	first := tagger.Tag(activity).Situations
	if len(first) == 0 {
		t.Fatal("expected at least one inferred situation for a spa entry")
	}
	for i := 0; i < 5; i++ {
		if got := tagger.Tag(activity).Situations; !reflect.DeepEqual(got, first) {
			t.Fatalf("situation inference not deterministic: %v vs %v", got, first)
		}
	}
}

func TestTagFallbackEntryHasNoSituations(t *testing.T) {
	tagger := newTestTagger()

	got := tagger.Tag(Activity{ID: "a1", Name: "Bingo Night"})
	if len(got.Situations) != 0 {
		t.Errorf("fallback-trait entry should infer no situations, got %v", got.Situations)
	}
}

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"guided ecological hike", "ecolog", true},
		{"guided ecological hike", "hike", true},
		{"spa day pass", "day pass", true},
		{"swimming pool", "Swim", true}, // keyword is folded by the primitive
		{"board games", "sport", false},
		{"", "nature", false},
	}

	for _, tt := range tests {
		if got := MatchesKeyword(tt.text, tt.keyword); got != tt.want {
			t.Errorf("MatchesKeyword(%q, %q) = %v, want %v", tt.text, tt.keyword, got, tt.want)
		}
	}
}

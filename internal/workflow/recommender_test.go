// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/knowledge"
	"github.com/solace-labs/solace/internal/message"
	"github.com/solace-labs/solace/internal/recommend"
)

func newTestRecommender(activities []catalog.Activity) *Recommender {
	store := catalog.NewStore()
	store.Replace(activities, catalog.LoadStats{Loaded: len(activities)})
	engine := recommend.NewEngine(knowledge.NewBase(), store, recommend.DefaultWeights())
	return NewRecommender(engine, message.NewSeededComposer(1))
}

func testActivities() []catalog.Activity {
	return []catalog.Activity{
		{ID: "a1", Name: "Forest Walk", Category: "Nature", Subcategory: "Hiking", Traits: []string{"nature"}},
		{ID: "a2", Name: "Swimming Pool Day Pass", Category: "Wellness", Subcategory: "Aquatics", Traits: []string{"water", "low-stimulation"}},
		{ID: "a3", Name: "Quiet Yoga Evenings", Category: "Wellness", Subcategory: "Yoga", Traits: []string{"mindfulness"}},
	}
}

func TestProcessBuildsFullResult(t *testing.T) {
	recommender := newTestRecommender(testActivities())

	profile := recommend.Profile{
		PersonID: "p1",
		Name:     "Ana",
		Age:      34,
		Hobbies:  []string{"yoga"},
		Goals:    []string{"Sleep better"},
	}
	situation := recommend.Situation{
		Category: knowledge.CategoryAnxiety,
		Subtype:  "work",
		Context:  "deadlines piling up",
	}

	result, err := recommender.Process(context.Background(), profile, situation, 0)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(result.Matches) == 0 {
		t.Fatal("expected matches")
	}
	if result.Message == "" {
		t.Error("expected a synthesized message")
	}
	if result.MessageLength != len([]rune(result.Message)) {
		t.Errorf("MessageLength = %d, want %d", result.MessageLength, len([]rune(result.Message)))
	}

	echo := result.Context
	if echo.ProfileName != "Ana" || echo.ProfileAge != 34 {
		t.Errorf("echoed profile wrong: %+v", echo)
	}
	if echo.SituationType != "anxiety" || echo.SituationSubtype != "work" || echo.SituationContext != "deadlines piling up" {
		t.Errorf("echoed situation wrong: %+v", echo)
	}
}

func TestProcessEmptyCatalogStillAnswers(t *testing.T) {
	recommender := newTestRecommender(nil)

	result, err := recommender.Process(context.Background(),
		recommend.Profile{Name: "Ana"},
		recommend.Situation{Category: knowledge.CategoryAnxiety}, 0)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(result.Matches) != 0 {
		t.Errorf("expected no matches, got %d", len(result.Matches))
	}
	if result.Message != "Ana, we are looking for the best options for you." {
		t.Errorf("unexpected fallback message: %q", result.Message)
	}
}

func TestProcessPropagatesEngineError(t *testing.T) {
	recommender := newTestRecommender(testActivities())

	_, err := recommender.Process(context.Background(),
		recommend.Profile{Name: "Ana"},
		recommend.Situation{Category: knowledge.CategoryAnxiety}, -1)
	if !errors.Is(err, recommend.ErrNegativeTopN) {
		t.Fatalf("expected ErrNegativeTopN, got %v", err)
	}
}

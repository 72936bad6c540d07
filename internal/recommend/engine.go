// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/knowledge"
	"github.com/solace-labs/solace/internal/logging"
)

// ErrNegativeTopN is returned when the caller asks for a negative number
// of results. This is the only programmer-error-class input the engine
// rejects; every "no data" condition degrades to a documented fallback.
var ErrNegativeTopN = errors.New("top_n must not be negative")

// Engine ranks catalog entries for a profile and situation.
type Engine struct {
	base    *knowledge.Base
	store   *catalog.Store
	weights Weights
}

// NewEngine creates a matching engine over the given knowledge base and
// catalog store.
func NewEngine(base *knowledge.Base, store *catalog.Store, weights Weights) *Engine {
	return &Engine{
		base:    base,
		store:   store,
		weights: weights,
	}
}

// Weights returns the engine's active weight set.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Recommend scores every entry of the current catalog snapshot and
// returns at most topN matches, best first. An empty catalog yields an
// empty slice. topN zero means DefaultTopN; a negative topN is rejected
// before any scoring happens.
func (e *Engine) Recommend(ctx context.Context, profile Profile, situation Situation, topN int) ([]ScoredMatch, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTopN, topN)
	}
	if topN == 0 {
		topN = DefaultTopN
	}

	snapshot := e.store.Current()
	if len(snapshot.Activities) == 0 {
		return []ScoredMatch{}, nil
	}

	traits := e.base.Lookup(situation.Category)

	matches := make([]ScoredMatch, 0, topN)
	for i := range snapshot.Activities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m, ok := e.score(&snapshot.Activities[i], profile, traits); ok {
			matches = append(matches, m)
		}
	}

	// Stable sort keeps catalog load order as the tiebreak, which makes
	// results deterministic for a fixed catalog and input.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}

	logging.Ctx(ctx).Debug().
		Str("category", string(situation.Category)).
		Int("candidates", len(snapshot.Activities)).
		Int("matches", len(matches)).
		Msg("recommendation pass complete")

	return matches, nil
}

// score computes one entry's score. The second return value is false
// when the entry scored zero or below and must be excluded.
func (e *Engine) score(activity *catalog.Activity, profile Profile, traits knowledge.TraitProfile) (ScoredMatch, bool) {
	score := 0
	var reasons []string

	// Beneficial traits: multiplicative in count, reason names the first.
	var matched []string
	for _, t := range activity.Traits {
		if containsString(traits.Beneficial, t) {
			matched = append(matched, t)
		}
	}
	if len(matched) > 0 {
		score += e.weights.BeneficialTrait * len(matched)
		reasons = append(reasons, fmt.Sprintf("activity type '%s' helps in your situation", matched[0]))
	}

	// Avoid traits: a single flat penalty however many match.
	for _, t := range activity.Traits {
		if containsString(traits.Avoid, t) {
			score -= e.weights.AvoidPenalty
			break
		}
	}

	// Situation keywords in the entry name.
	name := strings.ToLower(activity.Name)
	var matchedKeywords []string
	for _, kw := range traits.Keywords {
		if catalog.MatchesKeyword(name, kw) {
			matchedKeywords = append(matchedKeywords, kw)
		}
	}
	if len(matchedKeywords) > 0 {
		score += e.weights.NameKeyword * len(matchedKeywords)
		shown := matchedKeywords
		if len(shown) > 2 {
			shown = shown[:2]
		}
		reasons = append(reasons, "includes: "+strings.Join(shown, ", "))
	}

	if activity.Promoted {
		score += e.weights.Promotion
		reasons = append(reasons, "on promotion")
	}

	// Hobbies against name and subcategory.
	subcategory := strings.ToLower(activity.Subcategory)
	for _, hobby := range profile.Hobbies {
		folded := strings.ToLower(hobby)
		if catalog.MatchesKeyword(name, folded) || catalog.MatchesKeyword(subcategory, folded) {
			score += e.weights.HobbyMatch
			reasons = append(reasons, "connects with your interest in "+hobby)
		}
	}

	if score <= 0 {
		return ScoredMatch{}, false
	}
	return ScoredMatch{Activity: *activity, Score: score, Reasons: reasons}, true
}

// containsString reports whether s is present in list.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

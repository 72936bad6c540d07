// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package workflow composes the matching engine and message synthesizer
// into the request/response operations callers consume: the plain
// recommendation pipeline and the anonymized HR intervention flow.
package workflow

import (
	"context"

	"github.com/solace-labs/solace/internal/message"
	"github.com/solace-labs/solace/internal/recommend"
)

// EchoedContext restates the request inputs in the response for
// traceability. It deliberately carries no identity token; downstream
// consumers that must stay anonymous forward this as-is.
type EchoedContext struct {
	ProfileName      string   `json:"profile_name"`
	ProfileAge       int      `json:"profile_age"`
	Hobbies          []string `json:"hobbies"`
	Goals            []string `json:"goals"`
	SituationType    string   `json:"situation_type"`
	SituationSubtype string   `json:"situation_subtype"`
	SituationContext string   `json:"situation_context"`
}

// Result is the full recommendation response.
type Result struct {
	// Message is the synthesized empathic message, at most 500 runes.
	Message string `json:"message"`

	// MessageLength is the message length in runes.
	MessageLength int `json:"message_length"`

	// Matches is the ranked list, best first. Each match is stably
	// identified by its activity ID so synthesis can be re-run for a
	// specific chosen entry.
	Matches []recommend.ScoredMatch `json:"matches"`

	// Context echoes the request inputs.
	Context EchoedContext `json:"context"`
}

// Recommender is the recommendation orchestrator. Pure composition of
// the engine and the composer; it adds no computation of its own.
type Recommender struct {
	engine   *recommend.Engine
	composer *message.Composer
}

// NewRecommender wires the engine and composer into an orchestrator.
func NewRecommender(engine *recommend.Engine, composer *message.Composer) *Recommender {
	return &Recommender{engine: engine, composer: composer}
}

// Process runs the full pipeline: rank, synthesize, shape the response.
func (r *Recommender) Process(ctx context.Context, profile recommend.Profile, situation recommend.Situation, topN int) (*Result, error) {
	matches, err := r.engine.Recommend(ctx, profile, situation, topN)
	if err != nil {
		return nil, err
	}

	msg := r.composer.Compose(profile, situation, matches)

	return &Result{
		Message:       msg,
		MessageLength: len([]rune(msg)),
		Matches:       matches,
		Context: EchoedContext{
			ProfileName:      profile.Name,
			ProfileAge:       profile.Age,
			Hobbies:          profile.Hobbies,
			Goals:            profile.Goals,
			SituationType:    string(situation.Category),
			SituationSubtype: situation.Subtype,
			SituationContext: situation.Context,
		},
	}, nil
}

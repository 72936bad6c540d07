// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package workflow

import (
	"context"
	"fmt"

	"github.com/solace-labs/solace/internal/recommend"
)

// Uplift bounds for the heuristic productivity estimate, in percent.
const (
	minUpliftPercent = 3.0
	maxUpliftPercent = 30.0
)

// cardCandidates is how many matches the card pass requests; two
// distinct entries are selected from them.
const cardCandidates = 4

// Card is one actionable option presented to HR. It carries enough
// entry identity (ID, name, URL) for a later Accept call, and nothing
// about the person.
type Card struct {
	Activity recommend.ScoredMatch `json:"activity"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	// Explanation is built from the match's first reason.
	Explanation string `json:"explanation"`

	// EstimatedUpliftPercent is a heuristic productivity uplift figure,
	// clamped to [3, 30]. It is a talking point, not a measurement.
	EstimatedUpliftPercent float64 `json:"estimated_uplift_percent"`
}

// EmployeeNotice is the anonymized notification prepared for the
// employee once HR confirms a card. It never carries the person's
// identity token.
type EmployeeNotice struct {
	ToEmployee bool   `json:"to_employee"`
	Anonymous  bool   `json:"anonymous"`
	Message    string `json:"message"`

	Intervention struct {
		Title                  string  `json:"title"`
		URL                    string  `json:"url"`
		EstimatedUpliftPercent float64 `json:"estimated_uplift_percent"`
	} `json:"intervention"`
}

// HRWorkflow builds anonymized intervention proposals on top of the
// recommendation orchestrator.
type HRWorkflow struct {
	recommender *Recommender
}

// NewHRWorkflow creates the HR workflow over a recommender.
func NewHRWorkflow(recommender *Recommender) *HRWorkflow {
	return &HRWorkflow{recommender: recommender}
}

// CreateCards proposes up to two options for the person's situation.
// Cards reference distinct catalog entries so HR has a real choice.
func (w *HRWorkflow) CreateCards(ctx context.Context, profile recommend.Profile, situation recommend.Situation) ([]Card, error) {
	result, err := w.recommender.Process(ctx, profile, situation, cardCandidates)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, 2)
	used := make(map[string]struct{}, 2)
	for _, match := range result.Matches {
		if _, dup := used[match.Activity.ID]; dup {
			continue
		}
		used[match.Activity.ID] = struct{}{}

		explanation := "it fits the situation"
		if len(match.Reasons) > 0 {
			explanation = match.Reasons[0]
		}

		cards = append(cards, Card{
			Activity:               match,
			Title:                  match.Activity.Name,
			Subtitle:               match.Activity.Category + " · " + match.Activity.Subcategory,
			Explanation:            fmt.Sprintf("This option helps because %s; it supports wellbeing and can reduce absenteeism.", explanation),
			EstimatedUpliftPercent: estimateUplift(match.Score),
		})
		if len(cards) == 2 {
			break
		}
	}

	return cards, nil
}

// Accept confirms a card and prepares the anonymized employee notice,
// re-running message synthesis for the person's situation.
func (w *HRWorkflow) Accept(ctx context.Context, profile recommend.Profile, situation recommend.Situation, card Card) (*EmployeeNotice, error) {
	result, err := w.recommender.Process(ctx, profile, situation, 0)
	if err != nil {
		return nil, err
	}

	notice := &EmployeeNotice{
		ToEmployee: true,
		Anonymous:  true,
		Message: "We received an anonymous notification about your situation. " + result.Message +
			" HR has approved an intervention that could help you. If you would like details, " +
			"reply to this message and we will connect you with the wellbeing team.",
	}
	notice.Intervention.Title = card.Activity.Activity.Name
	notice.Intervention.URL = card.Activity.Activity.URL
	notice.Intervention.EstimatedUpliftPercent = card.EstimatedUpliftPercent

	return notice, nil
}

// estimateUplift maps a match score onto a bounded uplift percentage.
func estimateUplift(score int) float64 {
	uplift := float64(score) / 5.0
	if uplift < minUpliftPercent {
		uplift = minUpliftPercent
	}
	if uplift > maxUpliftPercent {
		uplift = maxUpliftPercent
	}
	return uplift
}

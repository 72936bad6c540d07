// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package recommend

// Default scoring weights. Empirically chosen; tunable via configuration
// but calibrated as a set.
const (
	// DefaultBeneficialTrait is awarded per trait in the beneficial set.
	DefaultBeneficialTrait = 30

	// DefaultAgeMatch is reserved for age-appropriate category matching,
	// which is documented upstream but not yet applied in scoring.
	DefaultAgeMatch = 20

	// DefaultNameKeyword is awarded per situation keyword in the name.
	DefaultNameKeyword = 15

	// DefaultHobbyMatch is awarded per hobby found in name/subcategory.
	DefaultHobbyMatch = 10

	// DefaultPromotion is awarded once for promoted entries.
	DefaultPromotion = 5

	// DefaultAvoidPenalty is subtracted once if any trait is in the
	// avoid set, regardless of how many avoid traits match.
	DefaultAvoidPenalty = 50

	// DefaultTopN is the result count when the caller passes zero.
	DefaultTopN = 3
)

// Weights holds the scoring weights. The zero value is not useful; use
// DefaultWeights and override fields through configuration.
type Weights struct {
	BeneficialTrait int `json:"beneficial_trait" koanf:"beneficial_trait"`
	AgeMatch        int `json:"age_match" koanf:"age_match"`
	NameKeyword     int `json:"name_keyword" koanf:"name_keyword"`
	HobbyMatch      int `json:"hobby_match" koanf:"hobby_match"`
	Promotion       int `json:"promotion" koanf:"promotion"`
	AvoidPenalty    int `json:"avoid_penalty" koanf:"avoid_penalty"`
}

// DefaultWeights returns the calibrated default weight set.
func DefaultWeights() Weights {
	return Weights{
		BeneficialTrait: DefaultBeneficialTrait,
		AgeMatch:        DefaultAgeMatch,
		NameKeyword:     DefaultNameKeyword,
		HobbyMatch:      DefaultHobbyMatch,
		Promotion:       DefaultPromotion,
		AvoidPenalty:    DefaultAvoidPenalty,
	}
}

// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package message assembles the empathic recommendation message from a
// fixed grammar of five clauses: confrontation, calming, connection,
// benefit and goal. The result never exceeds MaxLength runes, whatever
// the inputs.
package message

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/solace-labs/solace/internal/catalog"
	"github.com/solace-labs/solace/internal/recommend"
)

const (
	// MaxLength is the hard upper bound on a composed message, in runes.
	MaxLength = 500

	// truncateWindow is where truncation cuts when no sentence boundary
	// qualifies; three runes are reserved for the ellipsis.
	truncateWindow = 497

	// sentenceCutMin is the minimum period position (~60% of the
	// window) for a sentence-boundary cut to be preferred.
	sentenceCutMin = 300

	// goalGuard is the soft length threshold below which the goal
	// clause may still be appended.
	goalGuard = 420
)

// Composer builds recommendation messages. The random source behind the
// calming clause is injectable so tests can pin the selection; a mutex
// guards it because rand.Rand is not safe for concurrent use.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a composer with an entropy-seeded random source.
func NewComposer() *Composer {
	return NewSeededComposer(rand.Int63())
}

// NewSeededComposer creates a composer with a deterministic random
// source. Intended for tests and reproduction of reported messages.
func NewSeededComposer(seed int64) *Composer {
	return &Composer{rng: rand.New(rand.NewSource(seed))}
}

// Compose builds the message for the ranked matches. With no matches it
// returns the fallback sentence naming the person. The result is always
// at most MaxLength runes.
func (c *Composer) Compose(profile recommend.Profile, situation recommend.Situation, matches []recommend.ScoredMatch) string {
	if len(matches) == 0 {
		return truncate(profile.Name + ", we are looking for the best options for you.")
	}

	top := matches[0].Activity

	confrontation := confrontationFor(situation)
	calming := c.calmingFor(situation)
	connection := connectionFor(profile.Hobbies, top)

	var b strings.Builder
	b.WriteString(profile.Name)
	b.WriteString(", we know that right now you are ")
	b.WriteString(confrontation)
	b.WriteString(". ")
	b.WriteString(calming)
	b.WriteString(" So, ")
	b.WriteString(connection)

	if benefit := benefitFor(top.Traits); benefit != "" {
		b.WriteString(" — ")
		b.WriteString(benefit)
		b.WriteString(".")
	}

	msg := b.String()

	// Goal clause only if goals exist and there is room left.
	if len(profile.Goals) > 0 && len([]rune(msg)) < goalGuard {
		msg += " A step toward " + strings.ToLower(profile.Goals[0]) + "."
	}

	return truncate(msg)
}

// confrontationFor resolves category+subtype with the documented
// fallback chain: exact subtype, category generic, hard-coded generic.
func confrontationFor(situation recommend.Situation) string {
	table, ok := confrontations[situation.Category]
	if !ok {
		return genericConfrontation
	}
	if phrase, ok := table[situation.Subtype]; ok {
		return phrase
	}
	return table[genericSubtype]
}

// calmingFor picks one phrase uniformly at random from the category's
// pool, or the generic phrase for unknown categories.
func (c *Composer) calmingFor(situation recommend.Situation) string {
	pool, ok := calmingPools[situation.Category]
	if !ok || len(pool) == 0 {
		return genericCalming
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

// connectionFor phrases the recommendation around the person's hobbies.
// A hobby found in the activity's name or subcategory gets the strong
// phrasing; otherwise the first hobby gets the combinatory phrasing;
// with no hobbies the activity stands alone.
func connectionFor(hobbies []string, activity catalog.Activity) string {
	text := strings.ToLower(activity.Name + " " + activity.Subcategory)

	for _, hobby := range hobbies {
		if catalog.MatchesKeyword(text, hobby) {
			return "leveraging your interest in " + strings.ToLower(hobby) + ", we recommend " + activity.Name
		}
	}
	if len(hobbies) > 0 {
		return "combining your interest in " + strings.ToLower(hobbies[0]) + " with something new, we suggest " + activity.Name
	}
	return "we recommend " + activity.Name
}

// benefitFor returns the benefit sentence for the first trait that has
// one, or empty if none do.
func benefitFor(traits []string) string {
	for _, t := range traits {
		if benefit, ok := traitBenefits[t]; ok {
			return benefit
		}
	}
	return ""
}

// truncate enforces MaxLength, preferring a cut at the last sentence
// boundary when it lands past sentenceCutMin, and otherwise cutting at
// the last word boundary before truncateWindow with an ellipsis. All
// positions are rune indices so multi-byte text never splits mid-rune.
func truncate(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxLength {
		return msg
	}

	window := runes[:truncateWindow]

	if period := lastIndexRune(window, '.'); period > sentenceCutMin {
		return string(window[:period+1])
	}

	if space := lastIndexRune(window, ' '); space > 0 {
		return string(window[:space]) + "..."
	}
	return string(window) + "..."
}

// lastIndexRune returns the index of the last occurrence of r, or -1.
func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

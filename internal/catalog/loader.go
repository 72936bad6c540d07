// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/solace-labs/solace/internal/logging"
)

// RawActivity is the contract the acquisition pipeline delivers: an
// ordered collection of these, serialized as a JSON array. Price may
// arrive either as a bare number or as the scraper's structured form.
type RawActivity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Price       PriceFrom `json:"price"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	Promoted    bool      `json:"promoted"`
	Description string    `json:"description"`
}

// PriceFrom decodes either a JSON number or the scraper's object form
// {"amount": 123000, "display": "$123.000"}.
type PriceFrom struct {
	Amount float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PriceFrom) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		p.Amount = n
		return nil
	}
	var obj struct {
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	p.Amount = obj.Amount
	return nil
}

// LoadStats summarizes one load pass.
type LoadStats struct {
	// Loaded is the number of entries accepted and tagged.
	Loaded int `json:"loaded"`

	// Duplicates is the number of entries dropped because an earlier
	// entry claimed the same ID (first occurrence wins).
	Duplicates int `json:"duplicates"`

	// Rejected is the number of malformed entries (missing ID or name).
	Rejected int `json:"rejected"`
}

// Loader decodes raw catalog records and produces tagged activities.
type Loader struct {
	tagger *Tagger
}

// NewLoader creates a loader that tags entries with the given tagger.
func NewLoader(tagger *Tagger) *Loader {
	return &Loader{tagger: tagger}
}

// LoadFile reads and parses a catalog JSON file.
func (l *Loader) LoadFile(path string) ([]Activity, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load decodes an ordered JSON array of raw entries, rejects malformed
// ones, deduplicates by ID (first occurrence wins, later duplicates are
// dropped silently apart from the counter) and tags the survivors.
// Input order is preserved: it is the tiebreak for equal scores.
func (l *Loader) Load(r io.Reader) ([]Activity, LoadStats, error) {
	var raw []RawActivity
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, LoadStats{}, fmt.Errorf("decode catalog: %w", err)
	}

	var stats LoadStats
	seen := make(map[string]struct{}, len(raw))
	activities := make([]Activity, 0, len(raw))

	for _, entry := range raw {
		if entry.ID == "" || entry.Name == "" {
			stats.Rejected++
			logging.Warn().
				Str("id", entry.ID).
				Str("name", entry.Name).
				Msg("rejecting malformed catalog entry")
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			stats.Duplicates++
			continue
		}
		seen[entry.ID] = struct{}{}

		activities = append(activities, l.tagger.Tag(Activity{
			ID:          entry.ID,
			Name:        entry.Name,
			Category:    entry.Category,
			Subcategory: entry.Subcategory,
			PriceFrom:   entry.Price.Amount,
			URL:         entry.URL,
			ImageURL:    entry.ImageURL,
			Promoted:    entry.Promoted,
			Description: entry.Description,
		}))
	}

	stats.Loaded = len(activities)
	return activities, stats, nil
}

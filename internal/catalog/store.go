// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import (
	"sync/atomic"
	"time"
)

// Snapshot is an immutable view of the tagged catalog. Requests hold a
// snapshot for their whole duration, so a concurrent reload never
// changes results mid-request.
type Snapshot struct {
	// Activities is the tagged catalog in load order.
	Activities []Activity

	// LoadedAt is when this snapshot was built.
	LoadedAt time.Time

	// Stats are the load counters for this snapshot.
	Stats LoadStats
}

// Store holds the current catalog snapshot. Reloads replace the whole
// snapshot via atomic pointer swap; entries are never mutated in place.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store. Current() on an empty store returns a
// snapshot with no activities, which is a normal pre-load state, not an
// error.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{LoadedAt: time.Now()})
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Replace swaps in a freshly loaded catalog.
func (s *Store) Replace(activities []Activity, stats LoadStats) {
	s.current.Store(&Snapshot{
		Activities: activities,
		LoadedAt:   time.Now(),
		Stats:      stats,
	})
}

// Len returns the number of activities in the active snapshot.
func (s *Store) Len() int {
	return len(s.Current().Activities)
}

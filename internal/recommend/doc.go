// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package recommend implements the situation-to-activity matching engine.
//
// # Scoring
//
// Every catalog entry starts at zero and accumulates:
//
//   - +30 per trait in the situation's beneficial set
//   - −50 flat if any trait is in the situation's avoid set
//   - +15 per situation keyword found in the entry name
//   - +5 if the entry is on promotion
//   - +10 per profile hobby found in the entry name or subcategory
//
// Entries with a final score of zero or below are excluded outright.
// Survivors are sorted by score descending; ties keep catalog load
// order, so results are deterministic for a fixed catalog and input.
//
// The weights are empirically chosen constants inherited from field use.
// They are exposed as tunable configuration, but treat them as a
// calibrated set: do not re-derive individual values in isolation.
//
// # Concurrency
//
// Recommend is a pure computation over the profile, the situation and an
// immutable catalog snapshot. It performs no I/O and mutates nothing, so
// any number of requests may run concurrently against the same engine.
package recommend

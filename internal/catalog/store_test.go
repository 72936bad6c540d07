// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package catalog

import (
	"sync"
	"testing"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()

	snap := store.Current()
	if snap == nil {
		t.Fatal("empty store returned nil snapshot")
	}
	if len(snap.Activities) != 0 {
		t.Errorf("expected empty snapshot, got %d activities", len(snap.Activities))
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore()

	before := store.Current()
	store.Replace([]Activity{{ID: "a1", Name: "Entry"}}, LoadStats{Loaded: 1})
	after := store.Current()

	if before == after {
		t.Error("Replace did not swap the snapshot pointer")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
	if after.Stats.Loaded != 1 {
		t.Errorf("Stats.Loaded = %d, want 1", after.Stats.Loaded)
	}
}

func TestStoreSnapshotStableDuringReplace(t *testing.T) {
	store := NewStore()
	store.Replace([]Activity{{ID: "old", Name: "Old"}}, LoadStats{Loaded: 1})

	held := store.Current()
	store.Replace([]Activity{{ID: "new", Name: "New"}}, LoadStats{Loaded: 1})

	if held.Activities[0].ID != "old" {
		t.Error("held snapshot changed after Replace")
	}
	if store.Current().Activities[0].ID != "new" {
		t.Error("Current does not reflect the replacement")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Replace([]Activity{{ID: "a1", Name: "Entry"}}, LoadStats{Loaded: 1})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap := store.Current(); snap == nil {
					t.Error("Current returned nil during concurrent replace")
					return
				}
			}
		}()
	}
	wg.Wait()
}

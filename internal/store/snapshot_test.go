package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"stellar-cargo/internal/fixtures"
)

func TestSnapshotMatchesSeed(t *testing.T) {
	seed := fixtures.Seed()
	snap := New(fixtures.Seed()).Snapshot()

	if diff := cmp.Diff(seed.Cargo, snap.Cargo); diff != "" {
		t.Errorf("cargo mismatch (-seed +snapshot):\n%s", diff)
	}
	if diff := cmp.Diff(seed.Astronauts, snap.Astronauts); diff != "" {
		t.Errorf("astronauts mismatch (-seed +snapshot):\n%s", diff)
	}
	if diff := cmp.Diff(seed.Modules, snap.Modules); diff != "" {
		t.Errorf("modules mismatch (-seed +snapshot):\n%s", diff)
	}
	if diff := cmp.Diff(seed.Missions, snap.Missions, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("missions mismatch (-seed +snapshot):\n%s", diff)
	}

	newest := seed.ActivityLogs[len(seed.ActivityLogs)-1]
	if diff := cmp.Diff(newest, snap.ActivityLogs[0]); diff != "" {
		t.Errorf("newest log mismatch (-seed +snapshot):\n%s", diff)
	}
}

package service

import (
	"encoding/hex"
	"testing"
)

func TestSimulationIDGenerator_SkipsTakenIDs(t *testing.T) {
	g := NewSimulationIDGenerator("")
	taken := map[string]bool{"SIM001": true, "SIM002": true}

	if id := g.Next(func(id string) bool { return taken[id] }); id != "SIM003" {
		t.Fatalf("expected SIM003, got %s", id)
	}
	if id := g.Next(nil); id != "SIM004" {
		t.Fatalf("expected SIM004, got %s", id)
	}
}

func TestNewWorkspaceID_RandomHex(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewWorkspaceID()
		if len(id) != 32 {
			t.Fatalf("expected 32 hex chars, got %q", id)
		}
		if _, err := hex.DecodeString(id); err != nil {
			t.Fatalf("not hex: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

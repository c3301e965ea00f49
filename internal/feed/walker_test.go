package feed

import (
	"testing"

	"github.com/tradesim/platform/internal/core/domain"
)

var baseQuotes = []domain.Quote{
	{Symbol: "BTC", Name: "Bitcoin", Price: 67420.50, Change: 2.34, ChangePercent: 3.59},
	{Symbol: "ADA", Name: "Cardano", Price: 0.4567, Change: 0.0234, ChangePercent: 5.41},
}

func TestWalker_StaysWithinDrift(t *testing.T) {
	w := NewWalker(baseQuotes, 42)

	for i := 0; i < 5000; i++ {
		for j, q := range w.Step() {
			base := baseQuotes[j].Price
			if q.Price < base*(1-DefaultMaxDrift) || q.Price > base*(1+DefaultMaxDrift) {
				t.Fatalf("step %d: %s drifted to %v from %v", i, q.Symbol, q.Price, base)
			}
		}
	}
}

func TestWalker_SameSeedSameWalk(t *testing.T) {
	a := NewWalker(baseQuotes, 7)
	b := NewWalker(baseQuotes, 7)

	for i := 0; i < 50; i++ {
		qa, qb := a.Step(), b.Step()
		for j := range qa {
			if qa[j].Price != qb[j].Price {
				t.Fatalf("step %d diverged: %v != %v", i, qa[j].Price, qb[j].Price)
			}
		}
	}
}

func TestWalker_SnapshotStartsAtBase(t *testing.T) {
	w := NewWalker(baseQuotes, 1)

	for i, q := range w.Snapshot() {
		if q != baseQuotes[i] {
			t.Fatalf("expected %+v, got %+v", baseQuotes[i], q)
		}
	}
}

func TestWalker_DoesNotAliasInput(t *testing.T) {
	in := append([]domain.Quote(nil), baseQuotes...)
	w := NewWalker(in, 3)
	in[0].Price = 1

	if w.Snapshot()[0].Price != baseQuotes[0].Price {
		t.Fatal("walker must copy its base quotes")
	}
}

// Package feed produces the display-only price movement shown on the trading
// screen. Prices wander around their fixture values and never affect orders.
package feed

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tradesim/platform/internal/core/domain"
)

// Walk limits, as fractions of the base price.
const (
	DefaultStep     = 0.002
	DefaultMaxDrift = 0.05
)

// Walker is a bounded random walk over a fixed set of quotes. It is safe for
// concurrent use.
type Walker struct {
	mu       sync.Mutex
	base     []domain.Quote
	prices   []float64
	rng      *rand.Rand
	step     float64
	maxDrift float64
}

// NewWalker starts a walk at the given quotes. A zero seed uses the clock.
func NewWalker(base []domain.Quote, seed uint64) *Walker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w := &Walker{
		base:     append([]domain.Quote(nil), base...),
		prices:   make([]float64, len(base)),
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		step:     DefaultStep,
		maxDrift: DefaultMaxDrift,
	}
	for i, q := range base {
		w.prices[i] = q.Price
	}
	return w
}

// Step moves every price by at most step of its base and returns the new
// snapshot. Prices stay within maxDrift of their base.
func (w *Walker) Step() []domain.Quote {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, q := range w.base {
		move := (w.rng.Float64()*2 - 1) * w.step * q.Price
		lo, hi := q.Price*(1-w.maxDrift), q.Price*(1+w.maxDrift)
		w.prices[i] = math.Min(hi, math.Max(lo, w.prices[i]+move))
	}
	return w.snapshotLocked()
}

// Snapshot returns the current quotes without moving them.
func (w *Walker) Snapshot() []domain.Quote {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Walker) snapshotLocked() []domain.Quote {
	out := make([]domain.Quote, len(w.base))
	for i, q := range w.base {
		delta := w.prices[i] - q.Price
		q.Change += delta
		if q.Price != 0 {
			q.ChangePercent += delta / q.Price * 100
		}
		q.Price = w.prices[i]
		out[i] = q
	}
	return out
}

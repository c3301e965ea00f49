package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// SimulationIDPrefix is prepended to every generated simulation id.
const SimulationIDPrefix = "SIM"

// SimulationIDGenerator issues ids of the form SIM001, SIM002, ... from a
// monotonically increasing counter, skipping any id the caller reports as
// taken. Past 999 the number simply grows wider.
type SimulationIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSimulationIDGenerator(prefix string) *SimulationIDGenerator {
	if prefix == "" {
		prefix = SimulationIDPrefix
	}
	return &SimulationIDGenerator{prefix: prefix, next: 1}
}

// Next returns the next id for which taken reports false.
func (g *SimulationIDGenerator) Next(taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := fmt.Sprintf("%s%03d", g.prefix, g.next)
		g.next++
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// NewWorkspaceID returns a random 128-bit hex identifier.
func NewWorkspaceID() string {
	b := make([]byte, 16)
	// crypto/rand.Read never fails; it aborts the process instead.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

package service

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/tradesim/platform/internal/core/domain"
)

// SimulationRegistry is the ordered, in-memory collection of simulations
// owned by a workspace. Records are never deleted.
type SimulationRegistry struct {
	mu    sync.RWMutex
	items []domain.Simulation
	ids   *SimulationIDGenerator
}

// NewSimulationRegistry returns a registry seeded with the given simulations.
// Seeds with duplicate ids are dropped after the first occurrence.
func NewSimulationRegistry(seed []domain.Simulation) *SimulationRegistry {
	r := &SimulationRegistry{
		items: make([]domain.Simulation, 0, len(seed)),
		ids:   NewSimulationIDGenerator(SimulationIDPrefix),
	}
	for _, s := range seed {
		_ = r.Add(s)
	}
	return r
}

// Add appends sim. The id must not already be registered.
func (r *SimulationRegistry) Add(sim domain.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(sim.ID) >= 0 {
		return fmt.Errorf("add %s: %w", sim.ID, domain.ErrDuplicateSimulation)
	}
	r.items = append(r.items, sim.Clone())
	return nil
}

// SetStatus replaces the status of the simulation with the given id. It does
// not check lifecycle ordering; the Tracker does.
func (r *SimulationRegistry) SetStatus(id string, status domain.SimulationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("set status %s: %w", id, domain.ErrSimulationNotFound)
	}
	r.items[i].Status = status
	return nil
}

// Get returns a copy of the simulation with the given id.
func (r *SimulationRegistry) Get(id string) (domain.Simulation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Simulation{}, false
	}
	return r.items[i].Clone(), true
}

// NextID returns the next SIM id not registered here. Each registry counts
// on its own.
func (r *SimulationRegistry) NextID() string {
	return r.ids.Next(r.Has)
}

// Has reports whether id is registered.
func (r *SimulationRegistry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// List returns copies of all simulations in insertion order.
func (r *SimulationRegistry) List() []domain.Simulation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Simulation, len(r.items))
	for i, s := range r.items {
		out[i] = s.Clone()
	}
	return out
}

func (r *SimulationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// FirstPending returns the earliest registered simulation still Pending.
func (r *SimulationRegistry) FirstPending() (domain.Simulation, bool) {
	for sim := range r.all() {
		if sim.Status == domain.StatusPending {
			return sim, true
		}
	}
	return domain.Simulation{}, false
}

// Filter yields the simulations whose id or status contains term,
// case-insensitively. An empty term matches everything. The sequence is
// evaluated lazily against the registry's contents at iteration time and may
// be ranged over any number of times.
func (r *SimulationRegistry) Filter(term string) iter.Seq[domain.Simulation] {
	needle := strings.ToLower(term)
	return func(yield func(domain.Simulation) bool) {
		for sim := range r.all() {
			if !matches(sim, needle) {
				continue
			}
			if !yield(sim) {
				return
			}
		}
	}
}

// all walks the registry one element at a time so no lock is held while the
// consumer runs.
func (r *SimulationRegistry) all() iter.Seq[domain.Simulation] {
	return func(yield func(domain.Simulation) bool) {
		for i := 0; ; i++ {
			sim, ok := r.at(i)
			if !ok || !yield(sim) {
				return
			}
		}
	}
}

func (r *SimulationRegistry) at(i int) (domain.Simulation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i >= len(r.items) {
		return domain.Simulation{}, false
	}
	return r.items[i].Clone(), true
}

func (r *SimulationRegistry) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func matches(sim domain.Simulation, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(sim.ID), needle) ||
		strings.Contains(strings.ToLower(string(sim.Status)), needle)
}

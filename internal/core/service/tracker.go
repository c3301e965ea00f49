package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
)

// Tracker holds the single simulation a facilitator is currently running.
// It refers to the simulation by id; the registry owns the record.
type Tracker struct {
	mu        sync.Mutex
	registry  *SimulationRegistry
	currentID string
	log       zerolog.Logger
}

func NewTracker(registry *SimulationRegistry, log zerolog.Logger) *Tracker {
	return &Tracker{registry: registry, log: log}
}

// Start makes sim the current simulation and marks it Active. A nil sim is a
// no-op. The registered record must be Pending and no other simulation may be
// running.
func (t *Tracker) Start(sim *domain.Simulation) error {
	if sim == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentID != "" {
		return fmt.Errorf("start %s: %w (%s)", sim.ID, domain.ErrSimulationRunning, t.currentID)
	}

	stored, ok := t.registry.Get(sim.ID)
	if !ok {
		return fmt.Errorf("start %s: %w", sim.ID, domain.ErrSimulationNotFound)
	}
	if !stored.Status.CanTransitionTo(domain.StatusActive) {
		return fmt.Errorf("start %s: %w (from %s to %s)", sim.ID, domain.ErrInvalidTransition, stored.Status, domain.StatusActive)
	}

	if err := t.registry.SetStatus(sim.ID, domain.StatusActive); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	t.currentID = sim.ID

	t.log.Info().Str("simulation_id", sim.ID).Msg("simulation started")
	return nil
}

// End completes the current simulation and clears the reference. It is a
// no-op when nothing is running.
func (t *Tracker) End() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentID == "" {
		return nil
	}

	id := t.currentID
	t.currentID = ""
	if err := t.registry.SetStatus(id, domain.StatusCompleted); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	t.log.Info().Str("simulation_id", id).Msg("simulation ended")
	return nil
}

// Current returns the running simulation, if any.
func (t *Tracker) Current() (domain.Simulation, bool) {
	t.mu.Lock()
	id := t.currentID
	t.mu.Unlock()

	if id == "" {
		return domain.Simulation{}, false
	}
	return t.registry.Get(id)
}

// Clear drops the current reference without touching the registry.
func (t *Tracker) Clear() {
	t.mu.Lock()
	t.currentID = ""
	t.mu.Unlock()
}

package ports

import (
	"context"

	"github.com/tradesim/platform/internal/core/domain"
)

// CreateScenarioInput carries the fields of the scenario creation form.
type CreateScenarioInput struct {
	Title            string
	Description      string
	ScenarioType     string
	Difficulty       string
	MinPrice         int
	MaxPrice         int
	TimeDuration     string
	ParticipantLimit int
}

// SimulationRegistry is the subset of the registry the scenario service
// writes to.
type SimulationRegistry interface {
	Add(sim domain.Simulation) error
	Get(id string) (domain.Simulation, bool)
	// NextID returns a fresh simulation id not yet registered.
	NextID() string
}

// ScenarioService publishes new scenarios as pending simulations.
type ScenarioService interface {
	Create(ctx context.Context, registry SimulationRegistry, input CreateScenarioInput) (domain.Simulation, error)
}

package domain

import (
	"errors"
	"strconv"
)

// SimulationStatus represents the lifecycle state of a simulation.
type SimulationStatus string

const (
	StatusPending   SimulationStatus = "Pending"
	StatusActive    SimulationStatus = "Active"
	StatusCompleted SimulationStatus = "Completed"
)

// validTransitions defines the allowed lifecycle transitions.
var validTransitions = map[SimulationStatus][]SimulationStatus{
	StatusPending: {StatusActive},
	StatusActive:  {StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrSimulationNotFound = errors.New("simulation not found")
var ErrDuplicateSimulation = errors.New("simulation already exists")
var ErrSimulationRunning = errors.New("another simulation is already running")
var ErrNoPendingSimulation = errors.New("no pending simulations available")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s SimulationStatus) CanTransitionTo(next SimulationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Scenario types offered by the creation form.
const (
	ScenarioMarketCrash = "Market Crash"
	ScenarioBullRun     = "Bull Run"
	ScenarioVolatility  = "Volatility"
	ScenarioCustom      = "Custom"
)

// Difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Scenario is the configuration template a simulation was derived from.
// Seeded simulations have no scenario.
type Scenario struct {
	Title            string `json:"title" yaml:"title"`
	Description      string `json:"description" yaml:"description"`
	ScenarioType     string `json:"scenarioType" yaml:"scenarioType"`
	Difficulty       string `json:"difficulty" yaml:"difficulty"`
	PriceRange       [2]int `json:"priceRange" yaml:"priceRange"`
	TimeDuration     string `json:"timeDuration" yaml:"timeDuration"`
	ParticipantLimit int    `json:"participantLimit" yaml:"participantLimit"`
}

// Simulation is a runnable instance of a scenario.
type Simulation struct {
	ID           string           `json:"id" yaml:"id"`
	Status       SimulationStatus `json:"status" yaml:"status"`
	Participants string           `json:"participants" yaml:"participants"`
	Duration     string           `json:"duration" yaml:"duration"`
	Scenario     *Scenario        `json:"scenario,omitempty" yaml:"scenario,omitempty"`
}

// NewSimulation derives a pending simulation from a scenario.
func NewSimulation(id string, sc Scenario) Simulation {
	return Simulation{
		ID:           id,
		Status:       StatusPending,
		Participants: "0/" + strconv.Itoa(sc.ParticipantLimit),
		Duration:     sc.TimeDuration,
		Scenario:     &sc,
	}
}

// Title returns the scenario title, falling back to the id for seeded
// simulations.
func (s Simulation) Title() string {
	if s.Scenario != nil && s.Scenario.Title != "" {
		return s.Scenario.Title
	}
	return s.ID
}

// Clone returns a copy that shares no memory with s.
func (s Simulation) Clone() Simulation {
	if s.Scenario != nil {
		sc := *s.Scenario
		s.Scenario = &sc
	}
	return s
}

var ErrInvalidScenario = errors.New("invalid scenario")

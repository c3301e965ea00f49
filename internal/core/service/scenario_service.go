package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// Scenario form limits.
const (
	MaxDescriptionLength = 500
	MaxPrice             = 200000
	maxIDAttempts        = 16
)

type ScenarioService struct {
	logger zerolog.Logger
}

func NewScenarioService(logger zerolog.Logger) *ScenarioService {
	return &ScenarioService{logger: logger}
}

// Create publishes a scenario as a new Pending simulation in registry.
func (s *ScenarioService) Create(ctx context.Context, registry ports.SimulationRegistry, input ports.CreateScenarioInput) (domain.Simulation, error) {
	if err := validateScenario(input); err != nil {
		return domain.Simulation{}, err
	}

	sc := domain.Scenario{
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		ScenarioType:     input.ScenarioType,
		Difficulty:       input.Difficulty,
		PriceRange:       [2]int{input.MinPrice, input.MaxPrice},
		TimeDuration:     input.TimeDuration,
		ParticipantLimit: input.ParticipantLimit,
	}

	for range maxIDAttempts {
		sim := domain.NewSimulation(registry.NextID(), sc)
		err := registry.Add(sim)
		if errors.Is(err, domain.ErrDuplicateSimulation) {
			// Another request claimed the id between Next and Add.
			continue
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to register simulation")
			return domain.Simulation{}, err
		}

		s.logger.Info().
			Str("simulation_id", sim.ID).
			Str("scenario_type", sc.ScenarioType).
			Int("participant_limit", sc.ParticipantLimit).
			Msg("scenario published")
		return sim, nil
	}
	return domain.Simulation{}, fmt.Errorf("create scenario: %w: could not allocate id", domain.ErrDuplicateSimulation)
}

func validateScenario(in ports.CreateScenarioInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: scenario title cannot be empty", domain.ErrInvalidScenario)
	case len([]rune(in.Description)) > MaxDescriptionLength:
		return fmt.Errorf("%w: description cannot exceed %d characters", domain.ErrInvalidScenario, MaxDescriptionLength)
	case in.MinPrice < 0 || in.MaxPrice > MaxPrice:
		return fmt.Errorf("%w: price range must be within 0 and %d", domain.ErrInvalidScenario, MaxPrice)
	case in.MinPrice > in.MaxPrice:
		return fmt.Errorf("%w: minimum price exceeds maximum price", domain.ErrInvalidScenario)
	case in.ParticipantLimit < 1:
		return fmt.Errorf("%w: participant limit must be at least 1", domain.ErrInvalidScenario)
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
	"github.com/tradesim/platform/internal/core/service"
)

type ScenarioHandler struct {
	scenarios ports.ScenarioService
	log       zerolog.Logger
}

func NewScenarioHandler(scenarios ports.ScenarioService, log zerolog.Logger) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios, log: log}
}

// Form renders the scenario creation screen with its choices.
//
// @Summary      Scenario creation screen
// @Tags         scenarios
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /facilitator/scenario/create [get]
func (h *ScenarioHandler) Form(c echo.Context) error {
	return render(c, "scenario_create", scenarioFormView{
		ScenarioTypes:    scenarioTypes,
		Difficulties:     []string{domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced},
		TimeDurations:    []string{"1d", "1w", "1m", "custom"},
		ParticipantLimit: []int{25, 50, 100, 200},
		PriceStep:        1000,
		MaxPrice:         service.MaxPrice,
		MaxDescription:   service.MaxDescriptionLength,
	})
}

// Create publishes a scenario as a new pending simulation.
//
// @Summary      Create a scenario
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        body  body      createScenarioRequest  true  "Scenario"
// @Success      201   {object}  domain.Simulation
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /facilitator/scenario/create [post]
func (h *ScenarioHandler) Create(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	var req createScenarioRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	sim, err := h.scenarios.Create(c.Request().Context(), ws.Registry, req.input())
	if err != nil {
		return err
	}

	metrics.SimulationsCreatedTotal.WithLabelValues(req.ScenarioType).Inc()
	return c.JSON(http.StatusCreated, sim)
}

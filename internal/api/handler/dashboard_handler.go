package handler

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/nav"
	"github.com/tradesim/platform/internal/fixtures"
)

type DashboardHandler struct {
	data *fixtures.Data
	log  zerolog.Logger
}

func NewDashboardHandler(data *fixtures.Data, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{data: data, log: log}
}

// Dashboard lists the workspace's simulations, filtered by q.
//
// @Summary      Facilitator dashboard
// @Tags         simulations
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive filter on id and status"
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /facilitator/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	q := c.QueryParam("q")
	sims := slices.Collect(ws.Registry.Filter(q))
	if sims == nil {
		sims = []domain.Simulation{}
	}

	view := dashboardView{
		User:        ws.Session.Identity(),
		Metrics:     h.data.Metrics,
		Query:       q,
		Simulations: sims,
	}
	if cur, ok := ws.Tracker.Current(); ok {
		view.Current = &cur
	}
	return render(c, "facilitator_dashboard", view)
}

// StartSimulation starts the simulation named by id, or the first pending
// one when id is empty, then redirects to the monitor.
//
// @Summary      Start a simulation
// @Tags         simulations
// @Accept       json
// @Param        body  body      startSimulationRequest  false  "Simulation to start"
// @Success      302
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /facilitator/simulations/start [post]
func (h *DashboardHandler) StartSimulation(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	var req startSimulationRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	var (
		sim domain.Simulation
		ok  bool
	)
	if req.ID == "" {
		sim, ok = ws.Registry.FirstPending()
		if !ok {
			return domain.ErrNoPendingSimulation
		}
	} else {
		sim, ok = ws.Registry.Get(req.ID)
		if !ok {
			return fmt.Errorf("start %s: %w", req.ID, domain.ErrSimulationNotFound)
		}
	}

	if err := ws.Tracker.Start(&sim); err != nil {
		return err
	}
	metrics.SimulationTransitionsTotal.WithLabelValues(string(domain.StatusActive)).Inc()
	return c.Redirect(http.StatusFound, nav.PathSimulationMonitor)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/nav"
)

type MonitorHandler struct{}

func NewMonitorHandler() *MonitorHandler {
	return &MonitorHandler{}
}

// Monitor shows the running simulation, or an inert screen when none is
// running.
//
// @Summary      Simulation monitor
// @Tags         simulations
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /facilitator/simulation/monitor [get]
func (h *MonitorHandler) Monitor(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	var view monitorView
	if cur, ok := ws.Tracker.Current(); ok {
		view = monitorView{Active: true, Simulation: &cur}
	}
	return render(c, "simulation_monitor", view)
}

// End completes the running simulation, if any, and redirects to the results.
//
// @Summary      End the running simulation
// @Tags         simulations
// @Success      302
// @Router       /facilitator/simulation/end [post]
func (h *MonitorHandler) End(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	_, running := ws.Tracker.Current()
	if err := ws.Tracker.End(); err != nil {
		return err
	}
	if running {
		metrics.SimulationTransitionsTotal.WithLabelValues(string(domain.StatusCompleted)).Inc()
	}
	return c.Redirect(http.StatusFound, nav.PathResults)
}

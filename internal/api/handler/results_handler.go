package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/export"
	"github.com/tradesim/platform/internal/fixtures"
)

type ResultsHandler struct {
	data *fixtures.Data
	log  zerolog.Logger
}

func NewResultsHandler(data *fixtures.Data, log zerolog.Logger) *ResultsHandler {
	return &ResultsHandler{data: data, log: log}
}

// Results renders the final results screen.
//
// @Summary      Simulation results
// @Tags         results
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /simulation/results [get]
func (h *ResultsHandler) Results(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	return render(c, "simulation_results", resultsView{
		Results:     h.data.FinalResults,
		Leaderboard: h.data.FinalLeaderboard,
		Badges:      h.data.Badges,
		UserBadges:  h.data.CurrentUserBadges(),
		Role:        ws.Role(),
	})
}

// Export downloads the final leaderboard as CSV.
//
// @Summary      Export leaderboard
// @Tags         results
// @Produce      text/csv
// @Success      200  {string}  string
// @Success      302
// @Router       /simulation/results/export [get]
func (h *ResultsHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, export.ContentType+"; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	res.WriteHeader(http.StatusOK)

	if err := export.WriteLeaderboardCSV(res, h.data.FinalLeaderboard); err != nil {
		h.log.Error().Err(err).Msg("leaderboard export failed mid-stream")
		return nil
	}
	metrics.ExportsTotal.Inc()
	return nil
}

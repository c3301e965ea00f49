package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tradesim/platform/docs"
	"github.com/tradesim/platform/internal/api/handler"
	"github.com/tradesim/platform/internal/api/middleware"
	"github.com/tradesim/platform/internal/core/nav"
	"github.com/tradesim/platform/internal/core/service"
	"github.com/tradesim/platform/internal/feed"
	"github.com/tradesim/platform/internal/fixtures"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Log           zerolog.Logger
	SessionSecret string
	Workspaces    middleware.WorkspaceSource
	Fixtures      *fixtures.Data
	LoginFlow     *service.LoginFlow
	Feed          *feed.Streamer
	// Ready lists the dependencies checked by /health/ready.
	Ready map[string]handler.Pinger
	// NewWorkspaceID overrides workspace id generation. Tests only.
	NewWorkspaceID func() string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))

	// --- Dependencies ---
	scenarioService := service.NewScenarioService(d.Log)
	tradingService := service.NewTradingService(d.Fixtures, d.Fixtures.Portfolio, d.Log)

	authHandler := handler.NewAuthHandler(d.LoginFlow, d.Log)
	dashboardHandler := handler.NewDashboardHandler(d.Fixtures, d.Log)
	scenarioHandler := handler.NewScenarioHandler(scenarioService, d.Log)
	monitorHandler := handler.NewMonitorHandler()
	tradingHandler := handler.NewTradingHandler(d.Fixtures, tradingService, d.Feed, d.Log)
	resultsHandler := handler.NewResultsHandler(d.Fixtures, d.Log)

	// --- Health probes, metrics and docs (no workspace) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Ready)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Screens: every request passes the navigation guard ---
	guarded := []echo.MiddlewareFunc{
		middleware.Workspace(d.SessionSecret, d.Workspaces, d.NewWorkspaceID),
		middleware.Guard(),
	}

	e.GET(nav.PathFacilitatorLogin, authHandler.FacilitatorLoginForm, guarded...)
	e.POST(nav.PathFacilitatorLogin, authHandler.FacilitatorLogin, guarded...)
	e.GET(nav.PathParticipantLogin, authHandler.ParticipantLoginForm, guarded...)
	e.POST(nav.PathParticipantLogin, authHandler.ParticipantLogin, guarded...)
	e.POST(nav.PathLogout, authHandler.Logout, guarded...)
	e.GET(nav.PathLogout, authHandler.Logout, guarded...)

	e.GET(nav.PathFacilitatorHome, dashboardHandler.Dashboard, guarded...)
	e.POST(nav.PathSimulationStart, dashboardHandler.StartSimulation, guarded...)
	e.GET(nav.PathScenarioCreate, scenarioHandler.Form, guarded...)
	e.POST(nav.PathScenarioCreate, scenarioHandler.Create, guarded...)
	e.GET(nav.PathSimulationMonitor, monitorHandler.Monitor, guarded...)
	e.POST(nav.PathSimulationEnd, monitorHandler.End, guarded...)

	e.GET(nav.PathParticipantHome, tradingHandler.Trading, guarded...)
	e.POST(nav.PathTradingOrders, tradingHandler.PlaceOrder, guarded...)
	e.GET(nav.PathTradingFeed, tradingHandler.Feed, guarded...)

	e.GET(nav.PathResults, resultsHandler.Results, guarded...)
	e.GET(nav.PathResultsExport, resultsHandler.Export, guarded...)

	// Root and unknown paths always redirect.
	e.Any(nav.PathRoot, handler.NotFound, guarded...)
	e.Any("/*", handler.NotFound, guarded...)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/nav"
)

// Guard applies the navigation rules to every request. It must run after
// Workspace. Redirects are single hops.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ws := WorkspaceFrom(c)
			if ws == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "workspace not resolved")
			}

			path := c.Request().URL.Path
			d := nav.Decide(path, ws)
			if d.Render {
				return next(c)
			}

			metrics.NavigationRedirectsTotal.
				WithLabelValues(nav.Classify(path).String(), nav.StateOf(ws).String()).
				Inc()
			return c.Redirect(http.StatusFound, d.Redirect)
		}
	}
}

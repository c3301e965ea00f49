package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradesim/platform/internal/api/middleware"
	"github.com/tradesim/platform/internal/core/service"
)

// workspaceOf returns the workspace resolved by the Workspace middleware.
// Its absence means the route was registered without the middleware.
func workspaceOf(c echo.Context) (*service.Workspace, error) {
	ws := middleware.WorkspaceFrom(c)
	if ws == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "workspace not resolved")
	}
	return ws, nil
}

func render(c echo.Context, screen string, data any) error {
	return c.JSON(http.StatusOK, screenResponse{Screen: screen, Data: data})
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
}

func invalidInput(err error) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
}

// NotFound answers paths the guard let through without a handler. With the
// default rules it is unreachable.
func NotFound(c echo.Context) error {
	return echo.ErrNotFound
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/metrics"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/nav"
	"github.com/tradesim/platform/internal/core/service"
)

type AuthHandler struct {
	flow *service.LoginFlow
	log  zerolog.Logger
}

func NewAuthHandler(flow *service.LoginFlow, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{flow: flow, log: log}
}

// FacilitatorLoginForm renders the facilitator login screen.
//
// @Summary      Facilitator login screen
// @Tags         auth
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /facilitator/login [get]
func (h *AuthHandler) FacilitatorLoginForm(c echo.Context) error {
	return render(c, "facilitator_login", loginFormView{
		Role:   domain.RoleFacilitator,
		Fields: []string{"email", "password"},
	})
}

// FacilitatorLogin validates the form and logs the facilitator in after the
// simulated delay.
//
// @Summary      Facilitator login
// @Tags         auth
// @Accept       json
// @Param        body  body  facilitatorLoginRequest  true  "Credentials"
// @Success      302
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /facilitator/login [post]
func (h *AuthHandler) FacilitatorLogin(c echo.Context) error {
	var req facilitatorLoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleFacilitator), "invalid").Inc()
		return invalidInput(err)
	}
	return h.login(c, domain.NewFacilitator(req.Email), domain.RoleFacilitator)
}

// ParticipantLoginForm renders the participant login screen.
//
// @Summary      Participant login screen
// @Tags         auth
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /participant/login [get]
func (h *AuthHandler) ParticipantLoginForm(c echo.Context) error {
	return render(c, "participant_login", loginFormView{
		Role:   domain.RoleParticipant,
		Fields: []string{"participantId", "password"},
	})
}

// ParticipantLogin validates the form and logs the participant in after the
// simulated delay.
//
// @Summary      Participant login
// @Tags         auth
// @Accept       json
// @Param        body  body  participantLoginRequest  true  "Credentials"
// @Success      302
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /participant/login [post]
func (h *AuthHandler) ParticipantLogin(c echo.Context) error {
	var req participantLoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleParticipant), "invalid").Inc()
		return invalidInput(err)
	}
	return h.login(c, domain.NewParticipant(req.ParticipantID), domain.RoleParticipant)
}

func (h *AuthHandler) login(c echo.Context, identity *domain.Identity, role domain.Role) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}

	start := time.Now()
	err = h.flow.Submit(c.Request().Context(), ws.Session, identity, role)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.LoginsTotal.WithLabelValues(string(role), "abandoned").Inc()
		h.log.Debug().Str("workspace_id", ws.ID).Msg("login abandoned by client")
		return nil
	case err != nil:
		metrics.LoginsTotal.WithLabelValues(string(role), "error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "ok").Inc()
	metrics.LoginDuration.Observe(time.Since(start).Seconds())
	return c.Redirect(http.StatusFound, nav.Home(ws))
}

// Logout clears the session and the running simulation.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ws, err := workspaceOf(c)
	if err != nil {
		return err
	}
	if err := ws.Session.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	return c.Redirect(http.StatusFound, nav.PathRoot)
}

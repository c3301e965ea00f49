package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tradesim/platform/internal/core/service"
)

// WorkspaceCookie carries the signed workspace token.
const WorkspaceCookie = "tradesim_ws"

const (
	workspaceKey    = "workspace"
	workspaceMaxAge = 30 * 24 * time.Hour
)

// WorkspaceSource resolves a workspace id to its live workspace.
type WorkspaceSource interface {
	Get(ctx context.Context, id string) *service.Workspace
}

// Workspace resolves the caller's workspace from the cookie and stores it in
// the echo context. A missing or invalid cookie starts a new workspace.
func Workspace(secret string, source WorkspaceSource, newID func() string) echo.MiddlewareFunc {
	if newID == nil {
		newID = service.NewWorkspaceID
	}
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(WorkspaceCookie); err == nil {
				id, _ = ParseWorkspaceToken(cookie.Value, key)
			}

			if id == "" {
				id = newID()
				token, err := SignWorkspaceToken(id, key, time.Now())
				if err != nil {
					return err
				}
				c.SetCookie(&http.Cookie{
					Name:     WorkspaceCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int(workspaceMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(workspaceKey, source.Get(c.Request().Context(), id))
			return next(c)
		}
	}
}

// WorkspaceFrom returns the workspace stored by the Workspace middleware, or
// nil.
func WorkspaceFrom(c echo.Context) *service.Workspace {
	ws, _ := c.Get(workspaceKey).(*service.Workspace)
	return ws
}

// SetWorkspace stores ws in c the way the Workspace middleware does.
func SetWorkspace(c echo.Context, ws *service.Workspace) {
	c.Set(workspaceKey, ws)
}

// SignWorkspaceToken returns an HS256 token whose subject is the workspace id.
func SignWorkspaceToken(id string, key []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  id,
		IssuedAt: jwt.NewNumericDate(now),
	})
	return token.SignedString(key)
}

// ParseWorkspaceToken verifies raw and returns its workspace id.
func ParseWorkspaceToken(raw string, key []byte) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/middleware"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/service"
	"github.com/tradesim/platform/internal/fixtures"
	"github.com/tradesim/platform/internal/infrastructure/storage/memory"
)

var testData = fixtures.MustLoad()

func newTestWorkspace(t *testing.T) *service.Workspace {
	t.Helper()
	return service.NewWorkspace(context.Background(), "ws-test", memory.NewStore(), testData.SeedSimulations(), zerolog.Nop())
}

func loggedIn(t *testing.T, role domain.Role) *service.Workspace {
	t.Helper()

	ws := newTestWorkspace(t)
	identity := domain.NewFacilitator("john@example.com")
	if role == domain.RoleParticipant {
		identity = domain.NewParticipant("P-1")
	}
	if err := ws.Session.Login(context.Background(), identity, role); err != nil {
		t.Fatalf("login: %v", err)
	}
	return ws
}

// newContext builds an echo context for a request carrying a JSON body (when
// non-empty) and the given workspace (when non-nil).
func newContext(ws *service.Workspace, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ws != nil {
		middleware.SetWorkspace(c, ws)
	}
	return c, rec
}

// httpCode returns the status an error would be rendered with by echo.
func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, to string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (%s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != to {
		t.Fatalf("expected redirect to %q, got %q", to, loc)
	}
}

type screenBody struct {
	Screen string          `json:"screen"`
	Data   json.RawMessage `json:"data"`
}

func decodeScreen(t *testing.T, rec *httptest.ResponseRecorder) screenBody {
	t.Helper()
	var body screenBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body
}

func decodeData(t *testing.T, body screenBody, into any) {
	t.Helper()
	if err := json.Unmarshal(body.Data, into); err != nil {
		t.Fatalf("invalid screen data: %v", err)
	}
}

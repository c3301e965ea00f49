package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/api/handler"
	"github.com/tradesim/platform/internal/api/middleware"
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/service"
	"github.com/tradesim/platform/internal/feed"
	"github.com/tradesim/platform/internal/fixtures"
	"github.com/tradesim/platform/internal/infrastructure/storage/memory"
)

const routerSecret = "router-secret"

type testServer struct {
	e      *echo.Echo
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	data := fixtures.MustLoad()
	storage := memory.NewFactory()
	e := NewRouter(Deps{
		Log:            zerolog.Nop(),
		SessionSecret:  routerSecret,
		Workspaces:     service.NewWorkspaceManager(storage, data.SeedSimulations, zerolog.Nop()),
		Fixtures:       data,
		LoginFlow:      service.NewLoginFlow(0, zerolog.Nop()),
		Feed:           feed.NewStreamer(func() []domain.Quote { return data.Market }, time.Second, 1, zerolog.Nop()),
		Ready:          map[string]handler.Pinger{"storage": storage},
		NewWorkspaceID: func() string { return "ws-router" },
	})

	token, err := middleware.SignWorkspaceToken("ws-router", []byte(routerSecret), time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &testServer{e: e, cookie: &http.Cookie{Name: middleware.WorkspaceCookie, Value: token}}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(s.cookie)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func expectLocation(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != want {
		t.Fatalf("expected redirect to %q, got %q", want, got)
	}
}

func TestRouter_NewVisitorGetsCookie(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/facilitator/dashboard", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	expectLocation(t, rec, "/facilitator/login")
	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected a workspace cookie")
	}
}

func TestRouter_FacilitatorJourney(t *testing.T) {
	s := newTestServer(t)

	expectLocation(t, s.do(http.MethodGet, "/facilitator/dashboard", ""), "/facilitator/login")

	rec := s.do(http.MethodPost, "/facilitator/login", `{"email":"john@example.com","password":"password123"}`)
	expectLocation(t, rec, "/facilitator/dashboard")

	expectLocation(t, s.do(http.MethodGet, "/facilitator/login", ""), "/facilitator/dashboard")
	expectLocation(t, s.do(http.MethodGet, "/participant/trading", ""), "/facilitator/dashboard")

	if rec := s.do(http.MethodGet, "/facilitator/dashboard?q=pending", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "SIM003") {
		t.Fatalf("dashboard: %d %s", rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/facilitator/scenario/create", `{"title":"Crash drill","scenarioType":"Market Crash","difficulty":"Advanced","minPrice":0,"maxPrice":50000,"timeDuration":"1d","participantLimit":25}`)
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), `"id":"SIM004"`) {
		t.Fatalf("create scenario: %d %s", rec.Code, rec.Body.String())
	}

	expectLocation(t, s.do(http.MethodPost, "/facilitator/simulations/start", ""), "/facilitator/simulation/monitor")
	if rec := s.do(http.MethodPost, "/facilitator/simulations/start", `{"id":"SIM004"}`); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 while running, got %d", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/facilitator/simulation/monitor", ""); !strings.Contains(rec.Body.String(), `"active":true`) {
		t.Fatalf("monitor: %s", rec.Body.String())
	}
	expectLocation(t, s.do(http.MethodPost, "/facilitator/simulation/end", ""), "/simulation/results")

	if rec := s.do(http.MethodGet, "/simulation/results/export", ""); rec.Code != http.StatusOK {
		t.Fatalf("export: %d", rec.Code)
	}

	expectLocation(t, s.do(http.MethodPost, "/logout", ""), "/")
	expectLocation(t, s.do(http.MethodGet, "/facilitator/dashboard", ""), "/facilitator/login")
	expectLocation(t, s.do(http.MethodGet, "/simulation/results", ""), "/")
}

func TestRouter_ParticipantJourney(t *testing.T) {
	s := newTestServer(t)

	expectLocation(t, s.do(http.MethodPost, "/participant/login", `{"participantId":"P-9","password":"password123"}`), "/participant/trading")
	expectLocation(t, s.do(http.MethodGet, "/facilitator/dashboard", ""), "/facilitator/login")
	expectLocation(t, s.do(http.MethodGet, "/facilitator/login", ""), "/participant/trading")

	if rec := s.do(http.MethodGet, "/participant/trading", ""); rec.Code != http.StatusOK {
		t.Fatalf("trading: %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/participant/trading/orders", `{"side":"sell","symbol":"ETH","quantity":5}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for oversized sell, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPost, "/participant/trading/orders", `{"side":"sell","symbol":"ETH","quantity":1}`); rec.Code != http.StatusOK {
		t.Fatalf("expected accepted sell, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RootAndUnknownPaths(t *testing.T) {
	s := newTestServer(t)

	expectLocation(t, s.do(http.MethodGet, "/", ""), "/facilitator/login")
	expectLocation(t, s.do(http.MethodGet, "/participant/dashboard", ""), "/")
	expectLocation(t, s.do(http.MethodGet, "/facilitator/dashboard/", ""), "/facilitator/login")
}

func TestRouter_Probes(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := s.do(http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

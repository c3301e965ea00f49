// Package metrics defines the Prometheus metrics of the trading simulation
// service. All metrics register with the default registry on import and are
// served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradesim"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "facilitator" or "participant"
//   - result: "ok", "invalid", "abandoned" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginDuration measures a login from form submission to session write,
// including the simulated delay.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of successful logins including the simulated latency.",
		Buckets:   []float64{.01, .1, .5, 1, 2, 2.5, 3, 5},
	},
)

var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// SessionRestoresTotal counts workspaces built on first request.
// Label:
//   - result: "restored" when a persisted session was loaded, otherwise "empty"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of workspace session restores, by result.",
	},
	[]string{"result"},
)

// WorkspacesActive tracks workspaces held in memory.
var WorkspacesActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "workspaces_active",
		Help:      "Number of workspaces currently held in memory.",
	},
)

// NavigationRedirectsTotal counts requests the navigation guard redirected.
// Labels:
//   - class: access class of the requested path
//   - state: "unauthenticated", "facilitator" or "participant"
var NavigationRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_redirects_total",
		Help:      "Total number of guard redirects, by path class and session state.",
	},
	[]string{"class", "state"},
)

// ── Simulation metrics ────────────────────────────────────────────────────────

// SimulationsCreatedTotal counts published scenarios.
// Label:
//   - scenario_type: e.g. "Bull Run", "Market Crash"
var SimulationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_created_total",
		Help:      "Total number of simulations created, by scenario type.",
	},
	[]string{"scenario_type"},
)

// SimulationTransitionsTotal counts lifecycle transitions.
// Label:
//   - status: the status entered, "Active" or "Completed"
var SimulationTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulation_transitions_total",
		Help:      "Total number of simulation status transitions, by new status.",
	},
	[]string{"status"},
)

// ── Trading metrics ───────────────────────────────────────────────────────────

// OrdersTotal counts validated order submissions.
// Labels:
//   - side: "buy" or "sell"
//   - result: "accepted" or "rejected"
var OrdersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_total",
		Help:      "Total number of order submissions, by side and result.",
	},
	[]string{"side", "result"},
)

// FeedClients tracks connected price feed websockets.
var FeedClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_clients",
		Help:      "Number of connected price feed clients.",
	},
)

var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of leaderboard CSV exports.",
	},
)

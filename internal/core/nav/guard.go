// Package nav decides, for every requested path, whether the screen renders
// or the caller is sent elsewhere. Decisions are derived from the session on
// each call and never cached.
package nav

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tradesim/platform/internal/core/domain"
)

// Session is the read-only view of authentication state the guard needs.
type Session interface {
	IsAuthenticated() bool
	Role() domain.Role
}

// Class groups paths that share an access rule.
type Class int

const (
	ClassUnknown Class = iota
	ClassRoot
	ClassFacilitatorLogin
	ClassFacilitatorOnly
	ClassParticipantLogin
	ClassParticipantOnly
	ClassShared
)

func (c Class) String() string {
	switch c {
	case ClassRoot:
		return "root"
	case ClassFacilitatorLogin:
		return "facilitator-login"
	case ClassFacilitatorOnly:
		return "facilitator-only"
	case ClassParticipantLogin:
		return "participant-login"
	case ClassParticipantOnly:
		return "participant-only"
	case ClassShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Screen paths.
const (
	PathRoot              = "/"
	PathFacilitatorLogin  = "/facilitator/login"
	PathFacilitatorHome   = "/facilitator/dashboard"
	PathScenarioCreate    = "/facilitator/scenario/create"
	PathSimulationMonitor = "/facilitator/simulation/monitor"
	PathSimulationStart   = "/facilitator/simulations/start"
	PathSimulationEnd     = "/facilitator/simulation/end"
	PathParticipantLogin  = "/participant/login"
	PathParticipantHome   = "/participant/trading"
	PathTradingOrders     = "/participant/trading/orders"
	PathTradingFeed       = "/participant/trading/feed"
	PathResults           = "/simulation/results"
	PathResultsExport     = "/simulation/results/export"
	PathLogout            = "/logout"
)

var classes = map[string]Class{
	PathRoot:              ClassRoot,
	PathFacilitatorLogin:  ClassFacilitatorLogin,
	PathFacilitatorHome:   ClassFacilitatorOnly,
	PathScenarioCreate:    ClassFacilitatorOnly,
	PathSimulationMonitor: ClassFacilitatorOnly,
	PathSimulationStart:   ClassFacilitatorOnly,
	PathSimulationEnd:     ClassFacilitatorOnly,
	PathParticipantLogin:  ClassParticipantLogin,
	PathParticipantHome:   ClassParticipantOnly,
	PathTradingOrders:     ClassParticipantOnly,
	PathTradingFeed:       ClassParticipantOnly,
	PathResults:           ClassShared,
	PathResultsExport:     ClassShared,
	PathLogout:            ClassShared,
}

// Classify returns the access class of path. A single trailing slash is
// ignored.
func Classify(path string) Class {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return classes[path]
}

// State is the authentication state a decision is made in.
type State int

const (
	Unauthenticated State = iota
	Facilitator
	Participant
)

func (s State) String() string {
	switch s {
	case Facilitator:
		return "facilitator"
	case Participant:
		return "participant"
	default:
		return "unauthenticated"
	}
}

// StateOf derives the guard state from a session. An authenticated session
// with an unknown role is treated as unauthenticated.
func StateOf(s Session) State {
	if s == nil || !s.IsAuthenticated() {
		return Unauthenticated
	}
	switch s.Role() {
	case domain.RoleFacilitator:
		return Facilitator
	case domain.RoleParticipant:
		return Participant
	default:
		return Unauthenticated
	}
}

// Decision is the outcome for one request: render the screen, or redirect.
type Decision struct {
	Render   bool
	Redirect string
}

var (
	render = Decision{Render: true}
	toRoot = Decision{Redirect: PathRoot}
)

func redirect(path string) Decision { return Decision{Redirect: path} }

// rules is indexed by class, then by state.
var rules = map[Class][3]Decision{
	ClassFacilitatorLogin: {
		Unauthenticated: render,
		Facilitator:     redirect(PathFacilitatorHome),
		Participant:     redirect(PathParticipantHome),
	},
	ClassFacilitatorOnly: {
		Unauthenticated: redirect(PathFacilitatorLogin),
		Facilitator:     render,
		Participant:     redirect(PathFacilitatorLogin),
	},
	ClassParticipantLogin: {
		Unauthenticated: render,
		Facilitator:     redirect(PathFacilitatorHome),
		Participant:     redirect(PathParticipantHome),
	},
	ClassParticipantOnly: {
		Unauthenticated: redirect(PathParticipantLogin),
		Facilitator:     redirect(PathFacilitatorHome),
		Participant:     render,
	},
	ClassShared: {
		Unauthenticated: toRoot,
		Facilitator:     render,
		Participant:     render,
	},
	ClassRoot: {
		Unauthenticated: redirect(PathFacilitatorLogin),
		Facilitator:     redirect(PathFacilitatorLogin),
		Participant:     redirect(PathFacilitatorLogin),
	},
	ClassUnknown: {toRoot, toRoot, toRoot},
}

// Decide returns the single next step for path.
func Decide(path string, s Session) Decision {
	return rules[Classify(path)][StateOf(s)]
}

// maxHops bounds Resolve. The longest chain in the table is three hops.
const maxHops = 8

// Resolve follows redirects from path until a screen renders and returns that
// screen's path.
func Resolve(path string, s Session) (string, error) {
	for range maxHops {
		d := Decide(path, s)
		if d.Render {
			return path, nil
		}
		path = d.Redirect
	}
	return "", fmt.Errorf("nav: no screen reached within %d redirects", maxHops)
}

// Home returns the screen an authenticated session lands on, or the
// facilitator login screen when logged out.
func Home(s Session) string {
	switch StateOf(s) {
	case Facilitator:
		return PathFacilitatorHome
	case Participant:
		return PathParticipantHome
	default:
		return PathFacilitatorLogin
	}
}

// Route describes one classified path and its decision in each state.
type Route struct {
	Path      string
	Class     Class
	Decisions [3]Decision
}

// Routes lists every classified path, sorted by path.
func Routes() []Route {
	paths := make([]string, 0, len(classes))
	for p := range classes {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	out := make([]Route, 0, len(paths))
	for _, p := range paths {
		c := classes[p]
		out = append(out, Route{Path: p, Class: c, Decisions: rules[c]})
	}
	return out
}

// States lists the guard states in table order.
func States() []State { return []State{Unauthenticated, Facilitator, Participant} }

func (d Decision) String() string {
	if d.Render {
		return "render"
	}
	return "-> " + d.Redirect
}

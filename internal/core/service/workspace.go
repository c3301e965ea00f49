package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// Workspace is the application state of one browser: its session, its
// simulation registry and the tracker for the running simulation. It is
// built once per workspace id and handed to handlers explicitly.
type Workspace struct {
	ID       string
	Session  *SessionStore
	Registry *SimulationRegistry
	Tracker  *Tracker
}

// NewWorkspace wires the workspace components and restores any persisted
// session from kv.
func NewWorkspace(ctx context.Context, id string, kv ports.KeyValueStore, seed []domain.Simulation, log zerolog.Logger) *Workspace {
	w := newWorkspace(id, kv, seed, log)
	w.Session.Restore(ctx)
	return w
}

func newWorkspace(id string, kv ports.KeyValueStore, seed []domain.Simulation, log zerolog.Logger) *Workspace {
	log = log.With().Str("workspace_id", id).Logger()

	registry := NewSimulationRegistry(seed)
	tracker := NewTracker(registry, log)
	return &Workspace{
		ID:       id,
		Session:  NewSessionStore(kv, tracker, log),
		Registry: registry,
		Tracker:  tracker,
	}
}

// IsAuthenticated and Role let a Workspace stand in wherever the navigation
// guard needs session state.
func (w *Workspace) IsAuthenticated() bool { return w.Session.IsAuthenticated() }

func (w *Workspace) Role() domain.Role { return w.Session.Role() }

type workspaceEntry struct {
	ws       *Workspace
	lastSeen time.Time
	// restoreFailed is set while the persisted session could not be read.
	restoreFailed bool
}

// WorkspaceManager creates workspaces on first use and drops them after
// IdleTTL without a request.
type WorkspaceManager struct {
	mu         sync.Mutex
	workspaces map[string]*workspaceEntry
	lastSweep  time.Time

	storage ports.KeyValueStoreFactory
	seed    func() []domain.Simulation
	log     zerolog.Logger
	now     func() time.Time

	// IdleTTL is how long a workspace survives without a request. Zero keeps
	// workspaces for the lifetime of the process.
	IdleTTL time.Duration

	// OnCreate, when set, is called for every newly built workspace.
	OnCreate func(w *Workspace, restored bool)
	// OnEvict, when set, is called for every workspace dropped for idleness.
	OnEvict func(w *Workspace)
}

func NewWorkspaceManager(storage ports.KeyValueStoreFactory, seed func() []domain.Simulation, log zerolog.Logger) *WorkspaceManager {
	if seed == nil {
		seed = func() []domain.Simulation { return nil }
	}
	return &WorkspaceManager{
		workspaces: make(map[string]*workspaceEntry),
		storage:    storage,
		seed:       seed,
		log:        log,
		now:        time.Now,
	}
}

// Get returns the workspace for id, building and restoring it if needed.
// Storage is never read while the manager's lock is held. A workspace whose
// restore failed on a storage error retries it on later calls until a read
// succeeds or the session changes.
func (m *WorkspaceManager) Get(ctx context.Context, id string) *Workspace {
	now := m.now()

	m.mu.Lock()
	evicted := m.sweepLocked(now)
	e, ok := m.workspaces[id]
	var retry bool
	if ok {
		e.lastSeen = now
		retry = e.restoreFailed
	}
	m.mu.Unlock()
	m.evicted(evicted)

	if ok {
		if retry {
			m.retryRestore(ctx, e)
		}
		return e.ws
	}

	w := newWorkspace(id, m.storage.ForWorkspace(id), m.seed(), m.log)
	restored, err := w.Session.restore(ctx)

	m.mu.Lock()
	if existing, ok := m.workspaces[id]; ok {
		// A concurrent Get built it first.
		existing.lastSeen = now
		m.mu.Unlock()
		return existing.ws
	}
	m.workspaces[id] = &workspaceEntry{ws: w, lastSeen: now, restoreFailed: err != nil}
	m.mu.Unlock()

	m.log.Debug().Str("workspace_id", id).Bool("restored", restored).Bool("restore_failed", err != nil).Msg("workspace created")
	if m.OnCreate != nil {
		m.OnCreate(w, restored)
	}
	return w
}

func (m *WorkspaceManager) retryRestore(ctx context.Context, e *workspaceEntry) {
	// A login since the failure wrote both keys; storage is back and the
	// live session is authoritative.
	if !e.ws.Session.IsAuthenticated() {
		if _, err := e.ws.Session.restore(ctx); err != nil {
			return
		}
	}

	m.mu.Lock()
	e.restoreFailed = false
	m.mu.Unlock()

	m.log.Info().
		Str("workspace_id", e.ws.ID).
		Bool("restored", e.ws.Session.IsAuthenticated()).
		Msg("session restore recovered")
}

// sweepLocked removes idle workspaces. It scans at most once per half
// IdleTTL. m.mu must be held.
func (m *WorkspaceManager) sweepLocked(now time.Time) []*Workspace {
	if m.IdleTTL <= 0 || now.Sub(m.lastSweep) < m.IdleTTL/2 {
		return nil
	}
	m.lastSweep = now

	var evicted []*Workspace
	for id, e := range m.workspaces {
		if now.Sub(e.lastSeen) >= m.IdleTTL {
			delete(m.workspaces, id)
			evicted = append(evicted, e.ws)
		}
	}
	return evicted
}

func (m *WorkspaceManager) evicted(ws []*Workspace) {
	for _, w := range ws {
		m.log.Debug().Str("workspace_id", w.ID).Msg("workspace evicted")
		if m.OnEvict != nil {
			m.OnEvict(w)
		}
	}
}

// Len returns the number of live workspaces.
func (m *WorkspaceManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}

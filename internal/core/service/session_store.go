package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// Storage keys. Both are written on login and removed on logout.
const (
	KeyUser     = "user"
	KeyUserType = "userType"
)

// SessionState is a snapshot of the session delivered to subscribers.
type SessionState struct {
	Identity *domain.Identity
	Role     domain.Role
}

// Authenticated reports whether an identity is logged in.
func (s SessionState) Authenticated() bool { return s.Identity != nil }

// SessionStore holds the logged-in identity and its role, mirrored into a
// key-value store so a restarted process can restore it.
type SessionStore struct {
	mu       sync.RWMutex
	identity *domain.Identity
	role     domain.Role
	// gen counts logins and logouts; a restore that overlaps one is dropped.
	gen uint64

	subMu   sync.Mutex
	subs    map[int]func(SessionState)
	nextSub int

	kv      ports.KeyValueStore
	tracker *Tracker
	log     zerolog.Logger
}

// NewSessionStore returns a logged-out store. Call Restore to load a
// persisted session. tracker may be nil.
func NewSessionStore(kv ports.KeyValueStore, tracker *Tracker, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		kv:      kv,
		tracker: tracker,
		subs:    make(map[int]func(SessionState)),
		log:     log,
	}
}

// Login sets the identity and role and persists both before returning.
// Credentials are not checked here.
func (s *SessionStore) Login(ctx context.Context, identity *domain.Identity, role domain.Role) error {
	if identity == nil {
		return domain.ErrIdentityRequired
	}
	if !role.Valid() {
		return fmt.Errorf("login: %w: %q", domain.ErrInvalidRole, role)
	}

	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("login: encode identity: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUser, string(encoded)); err != nil {
		return fmt.Errorf("login: persist %s: %w", KeyUser, err)
	}
	if err := s.kv.Set(ctx, KeyUserType, string(role)); err != nil {
		// Keep the two keys all-or-nothing.
		_ = s.kv.Delete(ctx, KeyUser)
		return fmt.Errorf("login: persist %s: %w", KeyUserType, err)
	}

	cp := *identity
	s.mu.Lock()
	s.identity = &cp
	s.role = role
	s.gen++
	s.mu.Unlock()

	s.log.Info().Str("user_id", identity.ID).Str("role", string(role)).Msg("logged in")
	s.notify()
	return nil
}

// Logout clears the session and the current simulation, then removes the
// persisted keys. In-memory state is cleared even when storage fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.role = ""
	s.gen++
	s.mu.Unlock()

	if s.tracker != nil {
		s.tracker.Clear()
	}

	err := s.kv.Delete(ctx, KeyUser, KeyUserType)
	s.notify()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info().Msg("logged out")
	return nil
}

// Restore loads the persisted session. Missing keys, an unparseable identity,
// an unknown role or a storage failure all leave the store logged out. It
// reports whether a session was restored.
func (s *SessionStore) Restore(ctx context.Context) bool {
	ok, _ := s.restore(ctx)
	return ok
}

// restore is Restore that also returns the storage error, if reading failed.
// A login or logout that completes while the keys are being read wins over
// the restored state.
func (s *SessionStore) restore(ctx context.Context) (bool, error) {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	identity, role, ok, err := s.readPersisted(ctx)

	s.mu.Lock()
	if s.gen != gen {
		restored := s.identity != nil
		s.mu.Unlock()
		return restored, nil
	}
	if ok {
		s.identity = identity
		s.role = role
	} else {
		s.identity = nil
		s.role = ""
	}
	s.mu.Unlock()

	s.notify()
	return ok, err
}

func (s *SessionStore) readPersisted(ctx context.Context) (*domain.Identity, domain.Role, bool, error) {
	rawUser, hasUser, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn().Err(err).Str("key", KeyUser).Msg("session restore: read failed")
		return nil, "", false, err
	}
	rawRole, hasRole, err := s.kv.Get(ctx, KeyUserType)
	if err != nil {
		s.log.Warn().Err(err).Str("key", KeyUserType).Msg("session restore: read failed")
		return nil, "", false, err
	}
	if !hasUser || !hasRole {
		return nil, "", false, nil
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		s.log.Warn().Err(err).Msg("session restore: stored identity is not valid json")
		return nil, "", false, nil
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		s.log.Warn().Str("role", rawRole).Msg("session restore: unknown role")
		return nil, "", false, nil
	}
	return &identity, role, true, nil
}

// IsAuthenticated reports whether an identity is logged in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Role returns the logged-in role, or "" when logged out.
func (s *SessionStore) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Identity returns a copy of the logged-in identity, or nil.
func (s *SessionStore) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

// State returns a consistent snapshot of identity and role.
func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := SessionState{Role: s.role}
	if s.identity != nil {
		cp := *s.identity
		st.Identity = &cp
	}
	return st
}

// Subscribe registers fn to be called after every login, logout and restore.
// The returned func removes the subscription.
func (s *SessionStore) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *SessionStore) notify() {
	st := s.State()

	s.subMu.Lock()
	fns := make([]func(SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub key-value store
// ---------------------------------------------------------------------------

type stubKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr map[string]error // per-key Set failures
	delErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string), setErr: make(map[string]error)}
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setErr[key]; err != nil {
		return err
	}
	s.data[key] = value
	return nil
}

func (s *stubKV) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.delErr
}

func (s *stubKV) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

type stubKVFactory struct {
	mu     sync.Mutex
	stores map[string]*stubKV
}

func (f *stubKVFactory) ForWorkspace(id string) ports.KeyValueStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stores == nil {
		f.stores = make(map[string]*stubKV)
	}
	kv, ok := f.stores[id]
	if !ok {
		kv = newStubKV()
		f.stores[id] = kv
	}
	return kv
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var errStorageDown = errors.New("storage unavailable")

func seedSimulations() []domain.Simulation {
	return []domain.Simulation{
		{ID: "SIM001", Status: domain.StatusActive, Participants: "25/30", Duration: "2 hours"},
		{ID: "SIM002", Status: domain.StatusCompleted, Participants: "30/30", Duration: "4 hours"},
		{ID: "SIM003", Status: domain.StatusPending, Participants: "0/25", Duration: "Not started"},
	}
}

func facilitator() *domain.Identity {
	return domain.NewFacilitator("john@example.com")
}

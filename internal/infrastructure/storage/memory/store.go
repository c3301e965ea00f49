// Package memory keeps workspace key-value data in process memory. Data is
// lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/tradesim/platform/internal/core/ports"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// Factory returns the same Store for the same workspace id.
type Factory struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewFactory() *Factory {
	return &Factory{stores: make(map[string]*Store)}
}

func (f *Factory) ForWorkspace(id string) ports.KeyValueStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.stores[id]
	if !ok {
		s = NewStore()
		f.stores[id] = s
	}
	return s
}

// Ping always succeeds.
func (f *Factory) Ping(context.Context) error { return nil }

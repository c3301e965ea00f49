package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradesim/platform/internal/core/ports"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "tradesim:ws:"

// DefaultTTL bounds how long an idle workspace's session survives.
const DefaultTTL = 7 * 24 * time.Hour

// Store is a key-value store scoped to one workspace.
// Key format: tradesim:ws:<workspace_id>:<key>
type Store struct {
	client    redis.UniversalClient
	namespace string
	ttl       time.Duration
}

// NewStore wraps client for the given workspace. A zero ttl keeps keys
// forever.
func NewStore(client redis.UniversalClient, workspaceID string, ttl time.Duration) *Store {
	return &Store{
		client:    client,
		namespace: KeyPrefix + workspaceID + ":",
		ttl:       ttl,
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *Store) key(k string) string { return s.namespace + k }

// Factory hands out workspace stores sharing one client.
type Factory struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewFactory(client redis.UniversalClient, ttl time.Duration) *Factory {
	return &Factory{client: client, ttl: ttl}
}

func (f *Factory) ForWorkspace(id string) ports.KeyValueStore {
	return NewStore(f.client, id, f.ttl)
}

// Ping reports whether Redis is reachable.
func (f *Factory) Ping(ctx context.Context) error {
	return Ping(ctx, f.client, 0)
}

package ports

import "context"

// KeyValueStore is the session-scoped key-value storage that backs the
// Session Store. Implementations are scoped to a single workspace.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// KeyValueStoreFactory hands out a store scoped to one workspace.
type KeyValueStoreFactory interface {
	ForWorkspace(workspaceID string) KeyValueStore
}

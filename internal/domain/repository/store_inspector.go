package repository

import "context"

// StoreInspector exposes best-effort diagnostics about the backing store.
type StoreInspector interface {
	// Backend names the store implementation, e.g. "docstore/mongo" or "postgres".
	Backend() string

	// DatabaseName returns the configured database name, if any.
	DatabaseName() string

	// ListCollections returns the collection (or table) names reachable through
	// the store. It performs a round-trip and fails if the store is unreachable.
	ListCollections(ctx context.Context) ([]string, error)
}

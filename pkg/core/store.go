package core

import "context"

// Store defines the contract for persisting a ledger snapshot.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (a local file today, anything else tomorrow).
type Store interface {
	// Load reads the persisted snapshot and returns a validated mapping.
	// A missing destination yields an empty mapping, not an error. The live
	// ledger is never touched; the caller decides what to install.
	Load(ctx context.Context) (map[string]int, error)

	// Save persists the given snapshot, replacing the previous contents.
	Save(ctx context.Context, snapshot map[string]int) error
}

// Watchable defines a store that can report external changes to its
// destination.
type Watchable interface {
	// Watch emits an event whenever the persisted snapshot changes outside
	// this process. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

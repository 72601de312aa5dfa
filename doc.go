// Package stockroom is the Composition Root for the Stockroom application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Stockroom is a small inventory ledger for toolmakers. It treats a single
// structured file as the durable home of a name → quantity mapping, and the
// in-memory ledger as the live working copy. While the default implementation
// uses a local JSON file, the core is agnostic, allowing for other adapters
// via core.Store.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Guarded Mutations**: Add/remove keep quantities positive; an item hitting zero is deleted, never stored.
//   - **Tolerant Loading**: Malformed entries are skipped with a warning; structural file errors fail loudly.
//   - **Default Adapter (File)**: JSON out of the box, YAML by extension, atomic writes.
//   - **Reactive**: Watch the ledger file for external changes.
//   - **Extensible**: Designed to support other backends via core.Store.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := stockroom.New("inventory.json",
//		stockroom.WithLogger(logger),
//	)
//
//	// Restore the persisted state, mutate, persist
//	_ = svc.Restore(ctx)
//	_ = svc.AddItem(ctx, "apple", 10, nil)
//	_ = svc.Persist(ctx)
package stockroom

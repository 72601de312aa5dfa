package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the business logic for the inventory ledger: argument
// validation, journal and process logging, and persistence orchestration.
type Service struct {
	ledger *Ledger
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service. A nil ledger starts empty, a nil store
// disables persistence, and a nil logger falls back to slog.Default().
func NewService(ledger *Ledger, store Store, logger *slog.Logger) *Service {
	if ledger == nil {
		ledger = NewLedger()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: ledger, store: store, logger: logger}
}

// Ledger exposes the underlying ledger.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// AddItem adds qty of name to the ledger. The optional journal receives a
// human-readable record of the mutation; only add feeds the journal.
func (s *Service) AddItem(ctx context.Context, name string, qty int, journal *Journal) error {
	previous, current, err := s.ledger.Add(name, qty)
	if err != nil {
		s.logger.Error("add rejected", "item", name, "qty", qty, "error", err)
		return err
	}

	if qty == 0 {
		s.logger.Info("zero quantity received, no change", "item", name)
		return nil
	}

	journal.Record(fmt.Sprintf("%s: Added %d of %s (was %d, now %d)",
		time.Now().Format(time.RFC3339), qty, name, previous, current))
	s.logger.Info("item added", "item", name, "qty", qty, "was", previous, "now", current)
	return nil
}

// RemoveItem removes qty of name from the ledger. Removing the exact current
// quantity deletes the entry.
func (s *Service) RemoveItem(ctx context.Context, name string, qty int) error {
	remaining, err := s.ledger.Remove(name, qty)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInsufficientStock) {
			s.logger.Warn("remove rejected", "item", name, "qty", qty, "error", err)
		} else {
			s.logger.Error("remove rejected", "item", name, "qty", qty, "error", err)
		}
		return err
	}

	if remaining == 0 {
		s.logger.Info("item fully removed", "item", name, "qty", qty)
	} else {
		s.logger.Info("item removed", "item", name, "qty", qty, "left", remaining)
	}
	return nil
}

// Quantity returns the current quantity of name.
func (s *Service) Quantity(ctx context.Context, name string) (int, error) {
	qty, err := s.ledger.Quantity(name)
	if err != nil {
		s.logger.Error("quantity lookup failed", "item", name, "error", err)
		return 0, err
	}
	return qty, nil
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, sorted by name.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]string, error) {
	names, err := s.ledger.Low(threshold)
	if err != nil {
		s.logger.Error("low-stock check failed", "threshold", threshold, "error", err)
		return nil, err
	}
	return names, nil
}

// Entries returns all ledger entries sorted by name. A non-empty pattern
// filters item names using doublestar glob syntax (e.g. "produce/**").
func (s *Service) Entries(ctx context.Context, pattern string) ([]Entry, error) {
	entries := s.ledger.Entries()
	if pattern == "" {
		return entries, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidArgument, pattern)
	}
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidArgument, pattern)
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Restore loads the persisted snapshot and installs it as the ledger state.
// Entries with non-positive quantities are dropped with a warning so the
// ledger invariant holds; structural load failures propagate untouched.
func (s *Service) Restore(ctx context.Context) error {
	if s.store == nil {
		return errors.New("service has no store configured")
	}

	snapshot, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("restore failed", "error", err)
		return err
	}

	skipped := s.ledger.Replace(snapshot)
	for _, name := range skipped {
		s.logger.Warn("skipping entry with non-positive quantity", "item", name, "qty", snapshot[name])
	}
	s.logger.Info("ledger restored", "items", s.ledger.Len())
	return nil
}

// Persist saves the current ledger snapshot to the store.
func (s *Service) Persist(ctx context.Context) error {
	if s.store == nil {
		return errors.New("service has no store configured")
	}

	snapshot := s.ledger.Snapshot()
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Error("persist failed", "error", err)
		return err
	}
	s.logger.Info("ledger persisted", "items", len(snapshot))
	return nil
}

// Watch observes external changes to the store if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}

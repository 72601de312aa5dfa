package core

import (
	"fmt"
	"sort"
	"sync"
)

// Ledger holds the in-memory mapping of item name to quantity.
//
// Quantities are always positive: an item whose quantity reaches zero is
// deleted, never retained. The map is owned by an explicit struct behind a
// RWMutex so independent ledgers can coexist and callers from multiple
// goroutines are safe.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]int)}
}

// Add increases the quantity of name by qty and returns the previous and new
// quantities. A zero qty is an informational no-op: the ledger is untouched
// and both return values equal the current quantity.
func (l *Ledger) Add(name string, qty int) (previous, current int, err error) {
	if name == "" {
		return 0, 0, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidArgument)
	}
	if qty < 0 {
		return 0, 0, fmt.Errorf("%w: qty must be a non-negative integer, got %d", ErrInvalidArgument, qty)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	previous = l.entries[name]
	if qty == 0 {
		return previous, previous, nil
	}
	l.entries[name] = previous + qty
	return previous, previous + qty, nil
}

// Remove decreases the quantity of name by qty and returns the remaining
// quantity. Removing the exact current quantity deletes the entry and returns
// zero. On any error the ledger is left unchanged.
func (l *Ledger) Remove(name string, qty int) (remaining int, err error) {
	if name == "" {
		return 0, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidArgument)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("%w: qty must be a positive integer, got %d", ErrInvalidArgument, qty)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.entries[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if qty > current {
		return 0, fmt.Errorf("%w: cannot remove %d of %q, only %d in stock", ErrInsufficientStock, qty, name, current)
	}

	remaining = current - qty
	if remaining == 0 {
		delete(l.entries, name)
	} else {
		l.entries[name] = remaining
	}
	return remaining, nil
}

// Quantity returns the current quantity of name. It never returns zero, since
// zero-quantity entries do not exist.
func (l *Ledger) Quantity(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidArgument)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	qty, ok := l.entries[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return qty, nil
}

// Low returns the names of all items whose quantity is strictly below
// threshold, sorted by name. Plain map iteration would leak randomness into
// the result, so the sort is part of the contract.
func (l *Ledger) Low(threshold int) ([]string, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be a non-negative integer, got %d", ErrInvalidArgument, threshold)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var names []string
	for name, qty := range l.entries {
		if qty < threshold {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Entries returns all entries sorted by name.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, 0, len(l.entries))
	for name, qty := range l.entries {
		entries = append(entries, Entry{Name: name, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Snapshot returns a copy of the ledger contents.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(map[string]int, len(l.entries))
	for name, qty := range l.entries {
		snapshot[name] = qty
	}
	return snapshot
}

// Replace installs entries as the new ledger state, discarding the previous
// contents. Entries with empty names or non-positive quantities are skipped
// so the ledger invariant holds; the skipped names are returned sorted for
// the caller to report.
func (l *Ledger) Replace(entries map[string]int) (skipped []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make(map[string]int, len(entries))
	for name, qty := range entries {
		if name == "" || qty <= 0 {
			skipped = append(skipped, name)
			continue
		}
		next[name] = qty
	}
	l.entries = next
	sort.Strings(skipped)
	return skipped
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

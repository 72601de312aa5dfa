package core_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/aretw0/stockroom/pkg/core"
)

// MockStore implements core.Store in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockStore struct {
	data    map[string]int
	saves   int
	loadErr error
	saveErr error
}

func NewMockStore(data map[string]int) *MockStore {
	if data == nil {
		data = make(map[string]int)
	}
	return &MockStore{data: data}
}

func (m *MockStore) Load(ctx context.Context) (map[string]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make(map[string]int, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func (m *MockStore) Save(ctx context.Context, snapshot map[string]int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = snapshot
	m.saves++
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_AddFeedsJournal(t *testing.T) {
	service := core.NewService(nil, nil, quietLogger())
	ctx := context.TODO()

	var journal core.Journal
	if err := service.AddItem(ctx, "apple", 5, &journal); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if len(journal) != 1 {
		t.Fatalf("expected 1 journal record, got %d", len(journal))
	}
	if !strings.Contains(journal[0], "Added 5 of apple (was 0, now 5)") {
		t.Errorf("unexpected journal record: %q", journal[0])
	}
}

func TestService_AddZeroSkipsJournal(t *testing.T) {
	service := core.NewService(nil, nil, quietLogger())
	ctx := context.TODO()

	var journal core.Journal
	if err := service.AddItem(ctx, "apple", 0, &journal); err != nil {
		t.Fatalf("zero add should not fail: %v", err)
	}
	if len(journal) != 0 {
		t.Errorf("zero add must not journal, got %v", journal)
	}
}

func TestService_AddNilJournal(t *testing.T) {
	service := core.NewService(nil, nil, quietLogger())

	// A nil journal simply discards records.
	if err := service.AddItem(context.TODO(), "apple", 5, nil); err != nil {
		t.Fatalf("AddItem with nil journal failed: %v", err)
	}
}

func TestService_RestoreInstallsSnapshot(t *testing.T) {
	store := NewMockStore(map[string]int{"apple": 3, "banana": 8})
	service := core.NewService(nil, store, quietLogger())
	ctx := context.TODO()

	if err := service.Restore(ctx); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	qty, err := service.Quantity(ctx, "apple")
	if err != nil {
		t.Fatalf("Quantity failed: %v", err)
	}
	if qty != 3 {
		t.Errorf("expected 3, got %d", qty)
	}
}

func TestService_RestoreDropsNonPositive(t *testing.T) {
	store := NewMockStore(map[string]int{"apple": 3, "ghost": 0, "debt": -2})
	service := core.NewService(nil, store, quietLogger())
	ctx := context.TODO()

	if err := service.Restore(ctx); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if service.Ledger().Len() != 1 {
		t.Errorf("expected 1 entry after restore, got %d", service.Ledger().Len())
	}
	if _, err := service.Quantity(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for ghost, got %v", err)
	}
}

func TestService_RestorePropagatesLoadErrors(t *testing.T) {
	store := NewMockStore(nil)
	store.loadErr = core.ErrBadFormat
	service := core.NewService(nil, store, quietLogger())

	if err := service.Restore(context.TODO()); !errors.Is(err, core.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestService_PersistWritesSnapshot(t *testing.T) {
	store := NewMockStore(nil)
	service := core.NewService(nil, store, quietLogger())
	ctx := context.TODO()

	if err := service.AddItem(ctx, "apple", 10, nil); err != nil {
		t.Fatal(err)
	}
	if err := service.AddItem(ctx, "banana", 2, nil); err != nil {
		t.Fatal(err)
	}
	if err := service.Persist(ctx); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	want := map[string]int{"apple": 10, "banana": 2}
	if !reflect.DeepEqual(store.data, want) {
		t.Errorf("expected %v persisted, got %v", want, store.data)
	}
	if store.saves != 1 {
		t.Errorf("expected 1 save, got %d", store.saves)
	}
}

func TestService_EntriesPattern(t *testing.T) {
	service := core.NewService(nil, nil, quietLogger())
	ctx := context.TODO()

	for name, qty := range map[string]int{"produce/apple": 10, "produce/banana": 2, "dairy/milk": 6} {
		if err := service.AddItem(ctx, name, qty, nil); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := service.Entries(ctx, "produce/*")
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	want := []core.Entry{
		{Name: "produce/apple", Quantity: 10},
		{Name: "produce/banana", Quantity: 2},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("expected %v, got %v", want, entries)
	}

	if _, err := service.Entries(ctx, "produce/["); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("bad pattern: expected ErrInvalidArgument, got %v", err)
	}
}

func TestService_NoStore(t *testing.T) {
	service := core.NewService(nil, nil, quietLogger())
	ctx := context.TODO()

	if err := service.Restore(ctx); err == nil {
		t.Error("expected error restoring without a store")
	}
	if err := service.Persist(ctx); err == nil {
		t.Error("expected error persisting without a store")
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(nil, NewMockStore(nil), quietLogger())

	_, err := service.Watch(context.TODO())
	if err == nil {
		t.Fatal("expected error for non-watchable store")
	}
	if err.Error() != "store does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}

package stockroom_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stockroom"
)

func newTestService(t *testing.T, path string) *stockroom.Service {
	t.Helper()

	svc, err := stockroom.New(path,
		stockroom.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	return svc
}

// TestLifecycle exercises the full reference flow: restore, mutate, report,
// persist, and restore again in a fresh service.
func TestLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	svc := newTestService(t, path)
	require.NoError(t, svc.Restore(ctx), "missing file starts empty")

	var journal stockroom.Journal
	require.NoError(t, svc.AddItem(ctx, "apple", 10, &journal))
	require.NoError(t, svc.AddItem(ctx, "banana", 3, &journal))
	require.NoError(t, svc.RemoveItem(ctx, "banana", 1))
	require.Len(t, journal, 2, "only adds feed the journal")

	low, err := svc.LowStock(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"banana"}, low)

	require.NoError(t, svc.Persist(ctx))

	// A fresh service over the same file sees the same state.
	reloaded := newTestService(t, path)
	require.NoError(t, reloaded.Restore(ctx))

	entries, err := reloaded.Entries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []stockroom.Entry{
		{Name: "apple", Quantity: 10},
		{Name: "banana", Quantity: 2},
	}, entries)
}

func TestReadOnlyService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	writer := newTestService(t, path)
	require.NoError(t, writer.AddItem(ctx, "apple", 1, nil))
	require.NoError(t, writer.Persist(ctx))

	reader, err := stockroom.New(path,
		stockroom.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		stockroom.WithReadOnly(true),
	)
	require.NoError(t, err)
	require.NoError(t, reader.Restore(ctx))

	err = reader.Persist(ctx)
	assert.ErrorIs(t, err, stockroom.ErrReadOnly)
}

func TestErrorKindsSurviveTheFacade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	svc := newTestService(t, path)

	err := svc.AddItem(ctx, "", 1, nil)
	assert.ErrorIs(t, err, stockroom.ErrInvalidArgument)

	_, err = svc.Quantity(ctx, "missing")
	assert.ErrorIs(t, err, stockroom.ErrNotFound)

	require.NoError(t, svc.AddItem(ctx, "apple", 1, nil))
	err = svc.RemoveItem(ctx, "apple", 2)
	assert.ErrorIs(t, err, stockroom.ErrInsufficientStock)
}

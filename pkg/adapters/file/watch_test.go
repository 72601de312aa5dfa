package file_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stockroom/pkg/adapters/file"
	"github.com/aretw0/stockroom/pkg/core"
)

// setupWatchTest initializes a store and starts a watcher on its directory.
func setupWatchTest(t *testing.T) (*file.Store, <-chan core.Event, context.Context, context.CancelFunc) {
	t.Helper()

	store, err := file.NewStore(file.Config{
		Path:   filepath.Join(t.TempDir(), "inventory.json"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	events, err := store.Watch(ctx)
	require.NoError(t, err, "Watch should be supported")
	require.NotNil(t, events)

	return store, events, ctx, cancel
}

func TestWatch_ExternalChange(t *testing.T) {
	store, events, ctx, cancel := setupWatchTest(t)
	defer cancel()

	// Wait a bit to ensure the watcher is ready (naive)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(store.Path, []byte(`{"apple": 10}`), 0644))

	select {
	case event := <-events:
		// A fresh file arrives as CREATE; some platforms follow up with the
		// write itself, so either type is acceptable for the first event.
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, event.Type)
		assert.Equal(t, store.Path, event.Path)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
}

func TestWatch_ExternalDelete(t *testing.T) {
	store, events, ctx, cancel := setupWatchTest(t)
	defer cancel()

	require.NoError(t, os.WriteFile(store.Path, []byte(`{"apple": 10}`), 0644))
	time.Sleep(150 * time.Millisecond)
	drain(events)

	require.NoError(t, os.Remove(store.Path))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == core.EventDelete {
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for DELETE event")
		case <-ctx.Done():
			t.Fatal("Context cancelled waiting for DELETE event")
		}
	}
}

// TestWatch_IgnoreSelf ensures that events triggered by the store's own Save
// method are suppressed. This prevents reload loops in reactive apps.
func TestWatch_IgnoreSelf(t *testing.T) {
	store, events, _, cancel := setupWatchTest(t)
	defer cancel()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, store.Save(context.Background(), map[string]int{"apple": 10}))

	select {
	case event := <-events:
		t.Fatalf("own save should not produce an event, got %v", event)
	case <-time.After(500 * time.Millisecond):
		// quiet channel is the expected outcome
	}
}

func TestWatch_UnrelatedSiblingsIgnored(t *testing.T) {
	store, events, _, cancel := setupWatchTest(t)
	defer cancel()

	time.Sleep(100 * time.Millisecond)

	sibling := filepath.Join(filepath.Dir(store.Path), "notes.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("unrelated"), 0644))

	select {
	case event := <-events:
		t.Fatalf("sibling file should not produce an event, got %v", event)
	case <-time.After(500 * time.Millisecond):
	}
}

func drain(events <-chan core.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}

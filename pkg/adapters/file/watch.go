package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/stockroom/pkg/core"
)

const defaultEventBuffer = 16

var (
	_ core.Store     = (*Store)(nil)
	_ core.Watchable = (*Store)(nil)
)

// Watch emits an event whenever the ledger file changes outside this process.
// The watcher runs as a lifecycle worker until ctx is cancelled; the returned
// channel closes on shutdown.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	buffer := s.config.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	events := make(chan core.Event, buffer)

	w := newWatchWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		_ = w.Stop(context.Background())
		close(events)
		return nil
	})

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(store *Store, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("ledger-watcher"),
		store:      store,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic renames replace the inode,
	// which would leave a file-level watch pointing at nothing.
	dir := filepath.Dir(w.store.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.store.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack traces only when debug logging is enabled; production
			// levels skip the capture to keep log noise down.
			var stack string
			if logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}
			if stack != "" {
				logger.Error("watcher panic", "error", panicErr, "stack", stack)
			} else {
				logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Shutdown the debouncer before returning so no in-flight timer can fire
	// into a channel the caller is about to close.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(wErr)
		}
	}
}

// process filters, maps, and debounces a single filesystem event.
// Returns true if the event was accepted for delivery.
func (w *watchWorker) process(ctx context.Context, event fsnotify.Event) bool {
	logger := w.store.config.Logger
	logger.Debug("event received", "name", event.Name)

	// The directory watch also sees our atomic temp files and unrelated
	// siblings; only the ledger file itself matters.
	if filepath.Base(event.Name) != filepath.Base(w.store.Path) {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	if w.store.isSelfWrite(time.Now()) {
		logger.Debug("ignoring event from own save", "name", event.Name)
		return false
	}

	w.send(ctx, core.Event{
		Type:      eType,
		Path:      w.store.Path,
		Timestamp: time.Now().Unix(),
	})
	return true
}

// send enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *watchWorker) send(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover if the channel was closed while the timer was in flight
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) handleError(err error) {
	w.store.config.Logger.Error("fsnotify error", "error", err)
	if w.store.config.ErrorHandler != nil {
		w.store.config.ErrorHandler(err)
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

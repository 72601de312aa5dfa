package stockroom

import (
	"log/slog"

	"github.com/aretw0/stockroom/internal/platform"
	"github.com/aretw0/stockroom/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// DefaultFile is the ledger file used when no path is given.
const DefaultFile = platform.DefaultFile

// DefaultLowThreshold is the threshold the low-stock report uses when the
// caller does not supply one.
const DefaultLowThreshold = core.DefaultLowThreshold

// --- Types ---

// Entry is a public alias for a single name → quantity pair.
type Entry = core.Entry

// Journal is a public alias for the caller-supplied mutation journal.
type Journal = core.Journal

// Event is a public alias for a ledger file change event.
type Event = core.Event

// Ledger is a public alias for the in-memory ledger.
type Ledger = core.Ledger

// Service is a public alias for the ledger service.
type Service = core.Service

// Store is a public alias for the persistence port.
type Store = core.Store

// --- Errors ---

var (
	ErrInvalidArgument   = core.ErrInvalidArgument
	ErrNotFound          = core.ErrNotFound
	ErrInsufficientStock = core.ErrInsufficientStock
	ErrBadFormat         = core.ErrBadFormat
	ErrReadOnly          = core.ErrReadOnly
)

// --- Configuration ---

// Option defines a functional option for configuring Stockroom.
type Option = platform.Option

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithMustExist ensures the ledger file must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly enables read-only mode (Save returns ErrReadOnly).
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the ledger file into a temporary directory (useful for
// demos and testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the sandbox mechanism for `go run` sessions.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithEventBuffer allows specifying the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new Stockroom Service backed by the ledger file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// OpenStore initializes a store explicitly, without a service around it.
func OpenStore(path string, opts ...Option) (core.Store, error) {
	return platform.OpenStore(path, opts...)
}

// NewLedger creates an empty in-memory ledger, for callers who want the raw
// map semantics without persistence or logging.
func NewLedger() *core.Ledger {
	return core.NewLedger()
}

// --- Safety & Utils ---

// ResolveLedgerPath determines the actual path for the ledger file based on
// safety rules.
func ResolveLedgerPath(userPath string, forceTemp bool) string {
	return platform.ResolveLedgerPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

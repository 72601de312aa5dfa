package platform

import (
	"log/slog"

	"github.com/aretw0/stockroom/pkg/core"
)

// options holds the internal configuration for the stockroom service.
type options struct {
	store        core.Store
	logger       *slog.Logger
	mustExist    bool
	readOnly     bool
	forceTemp    bool
	devSafety    bool
	eventBuffer  int
	errorHandler func(error)
}

// Option defines a functional option for configuring Stockroom.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default file store will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMustExist ensures the ledger file must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Save returns core.ErrReadOnly.
// 2. Dev Safety (go run temp dir) is BYPASSED (uses the real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithForceTemp forces the ledger file into a temporary directory (useful for
// demos and testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the "sandbox" safety mechanism when running via
// `go run`. By default (true), the ledger file is re-rooted into a temporary
// directory to prevent accidental clobbering of a real inventory file.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithEventBuffer allows specifying the size of the watch event buffer.
// Zero means default (16).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring
// during the Watch loop. This allows applications to log or react to runtime
// watcher failures (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/stockroom/pkg/adapters/file"
	"github.com/aretw0/stockroom/pkg/core"
)

// DefaultFile is the ledger file used when no path is given.
const DefaultFile = "inventory.json"

// New creates a core.Service wired to a store for the given ledger file path.
//
//	svc, err := stockroom.New("inventory.json", stockroom.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	store, o, err := open(path, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(core.NewLedger(), store, o.logger), nil
}

// OpenStore initializes a store explicitly, without a service around it.
func OpenStore(path string, opts ...Option) (core.Store, error) {
	store, _, err := open(path, opts...)
	return store, err
}

func open(path string, opts ...Option) (core.Store, *options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, o, nil
	}

	// Dev safety: `go run` sessions operate on a temp copy of the path
	// unless explicitly disabled. Read-only mode bypasses the sandbox since
	// it cannot damage anything.
	forceTemp := o.forceTemp || (o.devSafety && !o.readOnly && IsDevRun())
	resolved := ResolveLedgerPath(path, forceTemp)

	if forceTemp {
		if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create sandbox directory: %w", err)
		}
	}

	store, err := file.NewStore(file.Config{
		Path:         resolved,
		MustExist:    o.mustExist,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		EventBuffer:  o.eventBuffer,
		ErrorHandler: o.errorHandler,
	})
	if err != nil {
		return nil, nil, err
	}
	return store, o, nil
}

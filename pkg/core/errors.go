package core

import "errors"

// Common errors. Callers inspect them with errors.Is; operations attach
// detail via fmt.Errorf("%w: ...").
var (
	// ErrInvalidArgument reports a malformed name, quantity, threshold,
	// pattern, or a ledger file whose top level is not an object.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports an operation on an item the ledger does not hold.
	ErrNotFound = errors.New("item not found")

	// ErrInsufficientStock reports a removal larger than the current stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrBadFormat reports a persisted ledger file that could not be parsed.
	ErrBadFormat = errors.New("malformed ledger file")

	// ErrReadOnly is returned by stores opened in read-only mode.
	ErrReadOnly = errors.New("store is in read-only mode")
)

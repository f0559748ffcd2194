package entities

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Handlers translate these with errors.Is, so every
// more specific violation wraps one of the two base sentinels.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrCurrencyMismatch is the money-arithmetic specialization of
	// ErrInvalidOperation: mixing currencies is a state violation, not a
	// malformed input.
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrInvalidOperation)

	ErrWorkOrderFinalized = fmt.Errorf("%w: work order is finalized", ErrInvalidOperation)
	ErrDuplicateItem      = fmt.Errorf("%w: item with this description already exists", ErrInvalidArgument)

	// ErrItemNotFound deliberately wraps neither base sentinel; "not found"
	// is an absence, reported distinctly from invariant violations.
	ErrItemNotFound = errors.New("work order item not found")
)

package model

import "errors"

// Store errors are surfaced distinctly from "no coverage" so callers
// can show a transient-error message instead of "no data here".
var (
	// ErrStoreUnavailable wraps geometry-store or cache I/O failures.
	ErrStoreUnavailable = errors.New("spatial store unavailable")

	// ErrStoreTimeout marks a store query that exceeded its deadline.
	// A timeout must never be interpreted as "outside mapped area".
	ErrStoreTimeout = errors.New("spatial store timeout")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is the single transient failure kind raised by the
	// chat orchestrator. Callers surface it as a recoverable error and
	// may retry by re-sending the same query.
	ErrNetwork = errors.New("Network error: Failed to fetch response. Please try again.")

	// ErrTurnInProgress indicates a turn is already in flight for the
	// conversation. Turns are serialised per conversation.
	ErrTurnInProgress = errors.New("turn in progress")
)

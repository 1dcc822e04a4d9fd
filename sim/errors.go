package sim

import "errors"

// Error kinds reported by the loader and the evaluation engine.
// Callers match them with errors.Is; the returned errors wrap them with detail.
var (
	// ErrMalformedHeader means the input or output declaration is missing,
	// non-integer, truncated or declares the same name twice.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrUnknownGateType marks a gate token the loader does not recognize.
	// It is recoverable: the token is skipped and loading continues.
	ErrUnknownGateType = errors.New("unknown gate type")
	// ErrMalformedGate means a recognized gate has a bad size or the stream
	// ended before all of its parameters were read.
	ErrMalformedGate = errors.New("malformed gate")
	// ErrCapacityExceeded means the symbol, gate or input count exceeds its limit.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidReference means a gate parameter points outside the value vector.
	ErrInvalidReference = errors.New("invalid slot reference")
)

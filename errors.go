package random

import "errors"

// Errors surfaced by the engine. All of them propagate to the immediate
// caller; the engine never recovers locally by substituting weaker randomness.
var (
	// ErrInvalidLength means a requested length or count was not a positive integer.
	ErrInvalidLength = errors.New("requested length must be a positive integer")

	// ErrInvalidAlphabetSpec means an alphabet bitmask was empty, contained
	// unknown flags, or resolved to zero characters.
	ErrInvalidAlphabetSpec = errors.New("invalid alphabet specification")

	// ErrRangeTooLarge means a requested integer range exceeds the representable domain.
	ErrRangeTooLarge = errors.New("requested range is too large")

	// ErrEntropyUnavailable means the host primitive could not supply bytes.
	// It is never silently retried or downgraded.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrSourceUnavailable means an entropy backend is missing or broken.
	// Source constructors fail with this at construction time, not at first use.
	ErrSourceUnavailable = errors.New("entropy source unavailable")
)

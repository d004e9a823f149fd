package random

// Source supplies raw unpredictable bytes and declares a strength rating.
//
// Implementations must return exactly n bytes or an error wrapping
// ErrEntropyUnavailable, and must report the same Strength for their entire
// lifetime. Implementations that depend on an optional platform feature must
// fail at construction time (ErrSourceUnavailable), not at first use.
type Source interface {
	// Bytes returns exactly n bytes of unpredictable data, or an error.
	Bytes(n int) ([]byte, error)

	// Strength reports how resistant this source's output is to prediction.
	Strength() Strength

	// Name identifies the source in logs and diagnostics.
	Name() string
}

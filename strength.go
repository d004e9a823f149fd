// Package random turns raw entropy into bounded integers, floats, booleans,
// and strings, while exposing an honest, composable notion of how strong the
// underlying entropy source is.
//
// All derivation goes through a Generator, which draws bytes from one or more
// Sources ordered by strength. Derived values are uniform where the contract
// says so (Int uses rejection sampling; naive modulo is deliberately avoided),
// and documented as approximate where they are not (Float64, StringFrom).
package random

// Strength classifies how resistant a source's output is to prediction.
// It is a property of a Source for its entire lifetime, never of an
// individual generated value.
type Strength int

// Strength levels, ordered from weakest to strongest.
const (
	StrengthNone Strength = iota
	StrengthLow
	StrengthMedium
	StrengthStrong
)

// String returns the human-readable name of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "none"
	case StrengthLow:
		return "low"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

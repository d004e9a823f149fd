package random

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/bits"
	"sort"
)

// Config holds configuration for a Generator
type Config struct {
	// AllowFallback permits falling back to the next weaker source when the
	// preferred one cannot supply entropy. Off by default: masking entropy
	// failure is a security-relevant decision the caller must opt into.
	AllowFallback bool

	// Logger receives diagnostics (fallback events, suspicious requests).
	// If nil, diagnostics are discarded.
	Logger *slog.Logger
}

// DefaultConfig returns the default generator configuration
func DefaultConfig() Config {
	return Config{}
}

// Generator derives bounded values from one or more entropy sources. It is
// the single choke point all higher-level derivation goes through: every
// operation computes how many raw bytes it needs and asks Bytes for exactly
// that many.
//
// A Generator is stateless apart from its source list and safe for
// concurrent use if its sources are.
type Generator struct {
	sources       []Source // ordered strongest first
	allowFallback bool
	logger        *slog.Logger
}

// New creates a Generator over the given sources. Sources are consulted in
// order of declared strength, strongest first; ties keep their given order.
func New(cfg Config, sources ...Source) (*Generator, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one source is required", ErrSourceUnavailable)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Strength() > ordered[j].Strength()
	})

	return &Generator{
		sources:       ordered,
		allowFallback: cfg.AllowFallback,
		logger:        logger,
	}, nil
}

// Default creates a Generator backed by the host CSPRNG.
func Default() (*Generator, error) {
	src, err := NewSystemSource()
	if err != nil {
		return nil, err
	}
	return New(DefaultConfig(), src)
}

// Strength reports the strength of the source the generator will draw from
// first. With fallback enabled, individual calls may be served by a weaker
// source; such calls are logged.
func (g *Generator) Strength() Strength {
	return g.sources[0].Strength()
}

// Bytes returns exactly n bytes of unpredictable data.
//
// On entropy failure the error propagates immediately unless fallback was
// enabled, in which case the next weaker source is consulted and the
// downgrade is logged. There is no automatic retry.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	var lastErr error
	for i, src := range g.sources {
		b, err := src.Bytes(n)
		if err == nil {
			if i > 0 {
				g.logger.Warn("entropy served by fallback source",
					slog.String("source", src.Name()),
					slog.String("strength", src.Strength().String()),
				)
			}
			return b, nil
		}

		lastErr = err
		if !g.allowFallback {
			break
		}
		g.logger.Warn("entropy source failed",
			slog.String("source", src.Name()),
			slog.String("error", err.Error()),
		)
	}

	if errors.Is(lastErr, ErrEntropyUnavailable) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, lastErr)
}

// Int returns a uniformly distributed integer in the inclusive range spanned
// by min and max, which may be given in either order. Equal bounds return
// that value without consuming entropy.
//
// Sampling rejects and redraws values outside the range instead of reducing
// them modulo the range width, so ranges whose width is not a power of two
// are not skewed toward low values.
func (g *Generator) Int(min, max int64) (int64, error) {
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo, nil
	}

	// Width in uint64 arithmetic: correct even when hi-lo overflows int64.
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrRangeTooLarge, lo, hi)
	}

	// Draw the minimal number of bytes covering the span, mask down to the
	// covering bit width, and redraw anything above the span.
	width := bits.Len64(span)
	nbytes := (width + 7) / 8
	mask := uint64(1)<<width - 1

	for {
		raw, err := g.Bytes(nbytes)
		if err != nil {
			return 0, err
		}

		var v uint64
		for _, b := range raw {
			v = v<<8 | uint64(b)
		}
		v &= mask

		if v <= span {
			return int64(uint64(lo) + v), nil
		}
	}
}

// Float64 returns a float in the inclusive-exclusive range spanned by min
// and max, which may be given in either order. Equal bounds return that
// value without consuming entropy.
//
// The value is one 64-bit draw reduced to its top 53 bits and scaled into
// the range. This trades perfect uniformity for simplicity: precision is
// bounded by the 53-bit draw, and there is no meaningful notion of a
// cryptographically secure float. Use it for sampling, not secrets.
func (g *Generator) Float64(min, max float64) (float64, error) {
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo, nil
	}

	raw, err := g.Bytes(8)
	if err != nil {
		return 0, err
	}

	f := float64(binary.BigEndian.Uint64(raw)>>11) / (1 << 53)
	return lo + f*(hi-lo), nil
}

// Bool returns a random boolean: one byte's parity. This is unbiased as long
// as the underlying source is unbiased at the bit level, which holds for any
// source of StrengthLow or above.
func (g *Generator) Bool() (bool, error) {
	raw, err := g.Bytes(1)
	if err != nil {
		return false, err
	}
	return raw[0]%2 == 1, nil
}

// String returns a random text string of exactly n characters in dense mode:
// raw bytes packed through unpadded URL-safe base64 and truncated to length.
// No padding characters appear in the result.
func (g *Generator) String(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	// Enough raw bytes to cover n base64 characters (6 bits each).
	raw, err := g.Bytes((n*6 + 7) / 8)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw)[:n], nil
}

// StringFrom returns a string of exactly n characters drawn from the given
// alphabet.
//
// Each output character advances a cumulative position by the next raw byte
// modulo the alphabet size. The walk smooths per-character skew when the
// alphabet size does not divide 256, but it is not a perfectly uniform
// per-character mapping; only the raw byte stream feeding it carries the
// source's strength. Callers needing provable per-character uniformity
// should map over a power-of-two alphabet instead.
func (g *Generator) StringFrom(n int, alphabet Alphabet) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	k := alphabet.Len()
	if k == 0 {
		return "", fmt.Errorf("%w: empty alphabet", ErrInvalidAlphabetSpec)
	}
	if k == 1 && n > 1 {
		// Almost certainly a caller mistake in a security-sensitive context:
		// the output is a constant string.
		g.logger.Warn("generating over a single-character alphabet produces a constant string",
			slog.Int("length", n),
		)
	}

	raw, err := g.Bytes(n)
	if err != nil {
		return "", err
	}

	out := make([]byte, n)
	pos := 0
	for i, b := range raw {
		pos = (pos + int(b)) % k
		out[i] = alphabet[pos]
	}
	return string(out), nil
}

// StringFlags is shorthand for BuildAlphabet followed by StringFrom.
func (g *Generator) StringFlags(n int, flags Flag) (string, error) {
	alphabet, err := BuildAlphabet(flags)
	if err != nil {
		return "", err
	}
	return g.StringFrom(n, alphabet)
}

package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SystemSource draws from the host cryptographic RNG (crypto/rand, i.e.
// getrandom/urandom or the platform equivalent).
type SystemSource struct{}

// Ensure SystemSource implements Source
var _ Source = (*SystemSource)(nil)

// NewSystemSource creates a SystemSource, probing the host primitive with a
// one-byte read so that a missing or broken backend fails here rather than
// on first use.
func NewSystemSource() (*SystemSource, error) {
	var probe [1]byte
	if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
		return nil, fmt.Errorf("%w: host CSPRNG probe failed: %v", ErrSourceUnavailable, err)
	}
	return &SystemSource{}, nil
}

// Bytes returns exactly n bytes from the host CSPRNG.
func (s *SystemSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b, nil
}

// Strength reports the strength of the host CSPRNG.
func (s *SystemSource) Strength() Strength {
	return StrengthStrong
}

// Name identifies the source in logs
func (s *SystemSource) Name() string {
	return "system"
}

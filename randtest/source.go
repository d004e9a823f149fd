// Package randtest provides deterministic entropy sources for testing code
// built on the random package.
package randtest

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/unyx/random"
)

// Source is a scripted entropy source. Bytes serves reads from a queue of
// pre-loaded material and panics when the script runs out, so a test fails
// loudly on any draw it did not plan for (including draws that should never
// happen, like an equal-bounds Int consuming entropy).
type Source struct {
	mu       sync.Mutex
	strength random.Strength
	buf      bytes.Buffer
	calls    int
}

// Ensure Source implements random.Source
var _ random.Source = (*Source)(nil)

// New creates a scripted source reporting the given strength.
func New(strength random.Strength) *Source {
	return &Source{strength: strength}
}

// Queue appends material for subsequent Bytes calls to consume.
func (s *Source) Queue(p ...[]byte) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range p {
		s.buf.Write(b)
	}
	return s
}

// Bytes pops the next n scripted bytes, panicking if the script is exhausted.
func (s *Source) Bytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.buf.Len() < n {
		panic(fmt.Sprintf("randtest: unexpected draw of %d bytes (%d scripted bytes left)", n, s.buf.Len()))
	}
	return s.buf.Next(n), nil
}

// Calls returns how many times Bytes was invoked.
func (s *Source) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Strength reports the configured strength.
func (s *Source) Strength() random.Strength {
	return s.strength
}

// Name identifies the source in logs
func (s *Source) Name() string {
	return "scripted"
}

// Constant is an inexhaustible source whose every byte is the same value.
type Constant struct {
	strength random.Strength
	value    byte
}

// Ensure Constant implements random.Source
var _ random.Source = (*Constant)(nil)

// NewConstant creates a source that yields the given byte forever.
func NewConstant(strength random.Strength, value byte) *Constant {
	return &Constant{strength: strength, value: value}
}

// Bytes returns n copies of the constant byte.
func (c *Constant) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	for i := range b {
		b[i] = c.value
	}
	return b, nil
}

// Strength reports the configured strength.
func (c *Constant) Strength() random.Strength {
	return c.strength
}

// Name identifies the source in logs
func (c *Constant) Name() string {
	return "constant"
}

// Failing is a source whose draws always fail with ErrEntropyUnavailable,
// for exercising failure propagation and fallback policies.
type Failing struct {
	strength random.Strength
}

// Ensure Failing implements random.Source
var _ random.Source = (*Failing)(nil)

// NewFailing creates a source that reports the given strength but never
// supplies bytes.
func NewFailing(strength random.Strength) *Failing {
	return &Failing{strength: strength}
}

// Bytes always fails.
func (f *Failing) Bytes(int) ([]byte, error) {
	return nil, fmt.Errorf("%w: scripted failure", random.ErrEntropyUnavailable)
}

// Strength reports the configured strength.
func (f *Failing) Strength() random.Strength {
	return f.strength
}

// Name identifies the source in logs
func (f *Failing) Name() string {
	return "failing"
}

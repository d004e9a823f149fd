package factory

import (
	"time"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/dependencies/mocks"
	"github.com/unyx/random/internal/storage/memory"
	"github.com/unyx/random/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory storage, a
// mocked clock, and a deterministic seeded generator.
func NewTestApp(seed string) (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	source, err := random.NewSeededSource([]byte(seed))
	if err != nil {
		return nil, err
	}
	generator, err := random.New(random.DefaultConfig(), source)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, mockClock, generator, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}, nil
}

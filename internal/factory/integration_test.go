package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/model"
	"github.com/unyx/random/internal/services/token"
)

func TestFactoryDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.NotNil(t, app.Storage)
	assert.NotNil(t, app.Generator)
	assert.NotNil(t, app.TokenService)
	assert.Equal(t, random.StrengthStrong, app.Generator.Strength())
}

func TestFactoryRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassandra"})
	require.Error(t, err)
}

func TestFactoryRequiresRedisConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

// Full token lifecycle over the wired app: issue, look up, expire, revoke.
func TestTokenLifecycle(t *testing.T) {
	app, err := NewTestApp("factory-integration")
	require.NoError(t, err)

	ctx := context.Background()

	issued, err := app.TokenService.Issue(ctx, token.IssueParams{
		Purpose: "deploy-key",
		TTL:     time.Hour,
	})
	require.NoError(t, err)
	assert.Len(t, issued.Value, token.DefaultLength)

	got, err := app.TokenService.Get(ctx, issued.ID)
	require.NoError(t, err)
	assert.Equal(t, issued.Value, got.Value)

	// Halfway through the TTL it is still there.
	app.MockClock.Advance(30 * time.Minute)
	_, err = app.TokenService.Get(ctx, issued.ID)
	require.NoError(t, err)

	// Past the TTL it is gone.
	app.MockClock.Advance(31 * time.Minute)
	_, err = app.TokenService.Get(ctx, issued.ID)
	assert.ErrorIs(t, err, model.ErrTokenNotFound)

	// A fresh token without TTL survives until revoked.
	forever, err := app.TokenService.Issue(ctx, token.IssueParams{Purpose: "api-key"})
	require.NoError(t, err)

	app.MockClock.Advance(24 * 365 * time.Hour)
	_, err = app.TokenService.Get(ctx, forever.ID)
	require.NoError(t, err)

	require.NoError(t, app.TokenService.Revoke(ctx, forever.ID))
	_, err = app.TokenService.Get(ctx, forever.ID)
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

package storage

import (
	"context"
	"time"

	"github.com/unyx/random/internal/model"
)

// Storage defines the interface for issued-token persistence
type Storage interface {
	// SaveToken persists a token. A positive ttl lets the backend expire the
	// record on its own; backends without native expiry may ignore it and
	// rely on the token's ExpiresAt instead.
	SaveToken(ctx context.Context, token *model.Token, ttl time.Duration) error

	// GetToken fetches a token by ID, returning model.ErrTokenNotFound if absent.
	GetToken(ctx context.Context, id model.TokenID) (*model.Token, error)

	// DeleteToken removes a token. Deleting an absent token is not an error.
	DeleteToken(ctx context.Context, id model.TokenID) error
}

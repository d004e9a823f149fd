package memory

import (
	"context"
	"sync"
	"time"

	"github.com/unyx/random/internal/model"
	"github.com/unyx/random/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu     sync.RWMutex
	tokens map[model.TokenID]*model.Token
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tokens: make(map[model.TokenID]*model.Token),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveToken stores a copy of the token. The ttl is ignored; expiry is
// enforced by the service against the token's ExpiresAt.
func (s *Storage) SaveToken(_ context.Context, token *model.Token, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *token
	s.tokens[token.ID] = &copied
	return nil
}

// GetToken returns a copy of the stored token
func (s *Storage) GetToken(_ context.Context, id model.TokenID) (*model.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[id]
	if !ok {
		return nil, model.ErrTokenNotFound
	}

	copied := *token
	return &copied, nil
}

// DeleteToken removes a token
func (s *Storage) DeleteToken(_ context.Context, id model.TokenID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, id)
	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unyx/random/internal/model"
	"github.com/unyx/random/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveToken stores a token, letting Redis expire it natively when a ttl is given
func (s *Storage) SaveToken(ctx context.Context, token *model.Token, ttl time.Duration) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}

	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, tokenKey(token.ID), data, ttl).Err()
}

// GetToken fetches a token by ID
func (s *Storage) GetToken(ctx context.Context, id model.TokenID) (*model.Token, error) {
	data, err := s.client.Get(ctx, tokenKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTokenNotFound
		}
		return nil, err
	}

	var token model.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteToken removes a token
func (s *Storage) DeleteToken(ctx context.Context, id model.TokenID) error {
	return s.client.Del(ctx, tokenKey(id)).Err()
}

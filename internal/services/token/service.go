package token

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/dependencies/clock"
	"github.com/unyx/random/internal/model"
	"github.com/unyx/random/internal/storage"
)

const (
	// DefaultLength is the token value length used when the caller does not ask for one.
	DefaultLength = 32

	// MinLength is the shortest value the service will issue. Anything
	// shorter carries too little entropy to act as a credential.
	MinLength = 8

	// idLength is the length of generated token IDs (dense base64 text).
	idLength = 26
)

// DefaultFlags is the alphabet used when the caller does not specify one:
// legible alphanumerics, safe to read out loud and re-type.
const DefaultFlags = random.Legible

// IssueParams describes a token issuance request
type IssueParams struct {
	// Purpose names what the token protects (required).
	Purpose string
	// Length of the token value; 0 means DefaultLength.
	Length int
	// Flags selects the value alphabet; 0 means DefaultFlags.
	Flags random.Flag
	// TTL after which the token expires; 0 means no expiry.
	TTL time.Duration
}

// Service issues, looks up, and revokes random tokens
type Service struct {
	storage   storage.Storage
	generator *random.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new token Service
func New(store storage.Storage, generator *random.Generator, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   store,
		generator: generator,
		clock:     clk,
		logger:    logger,
	}
}

// Issue generates and persists a new token.
//
// The ID is dense URL-safe text; the value is drawn from the alphabet the
// flags select. The value is returned exactly once, here; it is logged never.
func (s *Service) Issue(ctx context.Context, params IssueParams) (*model.Token, error) {
	purpose := strings.TrimSpace(params.Purpose)
	if purpose == "" {
		return nil, model.ErrInvalidPurpose
	}

	length := params.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < MinLength {
		return nil, fmt.Errorf("%w: %d < %d", model.ErrTokenTooShort, length, MinLength)
	}

	flags := params.Flags
	if flags == 0 {
		flags = DefaultFlags
	}
	alphabet, err := random.BuildAlphabet(flags)
	if err != nil {
		return nil, err
	}

	id, err := s.generator.String(idLength)
	if err != nil {
		return nil, err
	}
	value, err := s.generator.StringFrom(length, alphabet)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	token := &model.Token{
		ID:        model.TokenID(id),
		Value:     value,
		Purpose:   purpose,
		Strength:  s.generator.Strength(),
		CreatedAt: now,
	}
	if params.TTL > 0 {
		token.ExpiresAt = now.Add(params.TTL)
	}

	if err := s.storage.SaveToken(ctx, token, params.TTL); err != nil {
		return nil, err
	}

	s.logger.Info("token issued",
		slog.String("id", id),
		slog.String("purpose", purpose),
		slog.Int("length", length),
		slog.String("strength", token.Strength.String()),
	)

	return token, nil
}

// Get returns a token by ID. Expired tokens are treated as not found and
// removed from storage on the way out.
func (s *Service) Get(ctx context.Context, id model.TokenID) (*model.Token, error) {
	token, err := s.storage.GetToken(ctx, id)
	if err != nil {
		return nil, err
	}

	if token.Expired(s.clock.Now()) {
		if err := s.storage.DeleteToken(ctx, id); err != nil {
			s.logger.Warn("failed to delete expired token",
				slog.String("id", string(id)),
				slog.String("error", err.Error()),
			)
		}
		return nil, model.ErrTokenNotFound
	}

	return token, nil
}

// Revoke removes a token, returning model.ErrTokenNotFound if it does not exist
func (s *Service) Revoke(ctx context.Context, id model.TokenID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteToken(ctx, id); err != nil {
		return err
	}

	s.logger.Info("token revoked", slog.String("id", string(id)))
	return nil
}

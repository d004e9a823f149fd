package model

import (
	"time"

	"github.com/unyx/random"
)

// TokenID identifies an issued token
type TokenID string

// Token is an opaque random credential issued for a named purpose.
//
// Strength records the rating of the entropy source that produced the value,
// so a consumer can later audit what a token was generated from. It is a
// property of the source at issue time, not of the value itself.
type Token struct {
	ID        TokenID         `json:"id"`
	Value     string          `json:"value"`
	Purpose   string          `json:"purpose"`
	Strength  random.Strength `json:"strength"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at,omitzero"`
}

// Expired reports whether the token is past its expiry at the given time.
// Tokens without an expiry never expire.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

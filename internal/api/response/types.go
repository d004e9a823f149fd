package response

import (
	"time"

	"github.com/unyx/random/internal/model"
)

// Health is the response for the health endpoint
type Health struct {
	Status   string `json:"status"`
	Strength string `json:"strength"`
}

// Bytes is the response for raw byte generation
type Bytes struct {
	Data     string `json:"data"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}

// Int is the response for bounded integer generation
type Int struct {
	Value    int64  `json:"value"`
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Strength string `json:"strength"`
}

// Float is the response for bounded float generation
type Float struct {
	Value    float64 `json:"value"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Strength string  `json:"strength"`
}

// Bool is the response for boolean generation
type Bool struct {
	Value    bool   `json:"value"`
	Strength string `json:"strength"`
}

// String is the response for string generation
type String struct {
	Value    string `json:"value"`
	Length   int    `json:"length"`
	Alphabet string `json:"alphabet,omitempty"`
	Strength string `json:"strength"`
}

// Alphabet is the response for alphabet resolution
type Alphabet struct {
	Flags    string `json:"flags"`
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}

// Token represents a token in API responses. Value is only populated on
// issuance; lookups never return it.
type Token struct {
	ID        string    `json:"id"`
	Value     string    `json:"value,omitempty"`
	Purpose   string    `json:"purpose"`
	Strength  string    `json:"strength"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// TokenFromModel converts a model.Token, optionally including the value
func TokenFromModel(t *model.Token, includeValue bool) Token {
	resp := Token{
		ID:        string(t.ID),
		Purpose:   t.Purpose,
		Strength:  t.Strength.String(),
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
	if includeValue {
		resp.Value = t.Value
	}
	return resp
}

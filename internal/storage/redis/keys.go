package redis

import (
	"fmt"

	"github.com/unyx/random/internal/model"
)

// Key prefix for all token data
const keyPrefix = "unyxrand"

// tokenKey returns the Redis key for a Token
func tokenKey(id model.TokenID) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, id)
}

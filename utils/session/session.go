package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// TTL is how long a session stays valid.
const TTL = 24 * time.Hour

// ErrNotFound is returned for unknown or expired session tokens.
var ErrNotFound = errors.New("session not found")

// Data is the server-side payload a session token resolves to.
type Data struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// Store maps opaque tokens to session data with explicit expiry. The
// token itself carries no information; everything lives server-side.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, token string) (*Data, error)
	Destroy(ctx context.Context, token string) error
}

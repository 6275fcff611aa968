package ports

import (
	"context"
	"time"
)

// TokenStore tracks revoked access tokens by their unique token ID.
// Logout and refresh revoke the presented token; the HTTP layer rejects
// any token found in the store. Entries expire together with the token
// itself, so the store never grows past the live token window.
type TokenStore interface {
	// Revoke marks a token ID as revoked until its natural expiry.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether a token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

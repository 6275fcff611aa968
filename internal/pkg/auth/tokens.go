// Package auth provides token issuance and password hashing for the API's
// bearer-token authentication. Tokens are HS256 JWTs carrying the user ID as
// subject and a unique token ID (jti) so individual tokens can be revoked on
// logout.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails parsing, signature
// verification, or has expired.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the decoded content of an issued token.
type Claims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// TokenStrategy defines auth token creation and verification.
type TokenStrategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (Claims, error)
	TTL() time.Duration
}

// JWTStrategy implements TokenStrategy with HMAC-SHA256 signed JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy builds a JWTStrategy with the provided secret and lifetime.
// A non-positive lifetime falls back to 24 hours.
func NewJWTStrategy(secret string, ttl time.Duration) *JWTStrategy {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token for the user.
func (s *JWTStrategy) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a token and returns its decoded claims.
func (s *JWTStrategy) ParseToken(raw string) (Claims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UserID:    claims.Subject,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *JWTStrategy) TTL() time.Duration {
	return s.ttl
}

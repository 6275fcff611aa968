package http

import (
	"strings"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where the auth middleware stores the verified claims
// of the presented bearer token.
const claimsContextKey = "authClaims"

// BearerAuth returns middleware that verifies the Authorization header and
// rejects tokens that were revoked on logout. Verified claims are stored in
// the request context for handlers to pick up.
func BearerAuth(tokens auth.TokenStrategy, tokenStore ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return writeUnauthorized(ctx, "missing bearer token")
			}

			claims, err := tokens.ParseToken(raw)
			if err != nil {
				return writeUnauthorized(ctx, "invalid or expired token")
			}

			revoked, err := tokenStore.IsRevoked(ctx.Request().Context(), claims.TokenID)
			if err != nil {
				return writeError(ctx, err)
			}
			if revoked {
				return writeUnauthorized(ctx, "token has been revoked")
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// requestClaims returns the claims placed by BearerAuth.
func requestClaims(ctx echo.Context) (auth.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}

// actorID resolves the authenticated user's id from the request claims.
func actorID(ctx echo.Context) (kernel.UUID, bool) {
	claims, ok := requestClaims(ctx)
	if !ok {
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

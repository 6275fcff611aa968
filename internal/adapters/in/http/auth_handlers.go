package http

import (
	"errors"
	"net/http"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register - creates a user account and
// issues its first token.
func (s *Server) Register(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Name, request.Email, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.IssueToken(userID.String())
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}
	profile, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		User:  toUserResource(profile),
		Token: s.tokenResource(token),
	})
}

// Login handles POST /api/auth/login - exchanges credentials for a bearer
// token. Unknown emails and wrong passwords both come back as a plain 401
// so the response does not reveal which accounts exist.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	query, err := queries.NewGetUserByEmailQuery(request.Email)
	if err != nil {
		return writeUnauthorized(ctx, "invalid credentials")
	}

	credentials, err := s.getUserByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return writeUnauthorized(ctx, "invalid credentials")
		}
		return writeError(ctx, err)
	}

	if err = s.passwords.Compare(credentials.PasswordHash, request.Password); err != nil {
		return writeUnauthorized(ctx, "invalid credentials")
	}

	token, err := s.tokens.IssueToken(credentials.ID.String())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.tokenResource(token))
}

// Me handles GET /api/auth/me - returns the authenticated user's profile.
func (s *Server) Me(ctx echo.Context) error {
	userID, ok := actorID(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResource(profile))
}

// Logout handles POST /api/auth/logout - puts the presented token on the
// denylist for whatever lifetime it has left.
func (s *Server) Logout(ctx echo.Context) error {
	claims, ok := requestClaims(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	ttl := time.Until(claims.ExpiresAt)
	if err := s.tokenStore.Revoke(ctx.Request().Context(), claims.TokenID, ttl); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Refresh handles POST /api/auth/refresh - issues a fresh token and revokes
// the one used to authenticate the request.
func (s *Server) Refresh(ctx echo.Context) error {
	claims, ok := requestClaims(ctx)
	if !ok {
		return writeUnauthorized(ctx, "invalid or expired token")
	}

	token, err := s.tokens.IssueToken(claims.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	ttl := time.Until(claims.ExpiresAt)
	if err = s.tokenStore.Revoke(ctx.Request().Context(), claims.TokenID, ttl); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.tokenResource(token))
}

func (s *Server) tokenResource(token string) TokenResource {
	return TokenResource{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}
}

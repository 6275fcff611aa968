package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// GetUserByEmailQueryHandler retrieves account credentials for the login flow.
type GetUserByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByEmailQueryHandler creates a handler for credential lookups.
func NewGetUserByEmailQueryHandler(db *gorm.DB) GetUserByEmailQueryHandler {
	return GetUserByEmailQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when no account uses the email address;
// the login endpoint collapses that and a bad password into one 401.
func (h GetUserByEmailQueryHandler) Handle(ctx context.Context, query GetUserByEmailQuery) (UserCredentialsResponse, error) {
	if err := query.Validate(); err != nil {
		return UserCredentialsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id                        uuid.UUID
		name, email, passwordHash string
	)
	if err := row.Scan(&id, &name, &email, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserCredentialsResponse{}, errs.NewObjectNotFoundError("user", query.Email())
		}
		return UserCredentialsResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserCredentialsResponse{}, err
	}

	return UserCredentialsResponse{
		ID:           userID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"
)

// GetUserQueryHandler retrieves a user profile read model from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for user profile retrieval.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when no account matches.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Row()

	var (
		id          uuid.UUID
		name, email string
	)
	if err := row.Scan(&id, &name, &email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
		}
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}

	permissions, err := loadUserPermissions(ctx, h.db, userID)
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		ID:          userID,
		Name:        name,
		Email:       email,
		Permissions: permissions,
	}, nil
}

func loadUserPermissions(ctx context.Context, db *gorm.DB, userID kernel.UUID) ([]user.Permission, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT permission
		FROM user_permissions
		WHERE user_id = ?
		ORDER BY permission
	`, userID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]user.Permission, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		permission, parseErr := user.PermissionFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		permissions = append(permissions, permission)
	}

	return permissions, rows.Err()
}

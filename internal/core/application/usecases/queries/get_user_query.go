package queries

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// GetUserQuery retrieves the profile of an account by its identifier.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve one user profile.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	q := GetUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the requested account.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	q.userID = userID
	return nil
}

// UserResponse is the account read model: profile plus granted permissions.
type UserResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Permissions []user.Permission
}

package queries

import (
	"errors"
	"strings"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGetUserByEmailQueryIsNotConstructed = errors.New(
		"GetUserByEmailQuery must be created via NewGetUserByEmailQuery constructor",
	)
)

// GetUserByEmailQuery retrieves the credentials of an account by its email
// address. Used by the login flow; the response carries the password hash
// and must never be serialized outward.
type GetUserByEmailQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByEmailQuery creates a query to retrieve one account by email.
func NewGetUserByEmailQuery(email string) (GetUserByEmailQuery, error) {
	q := GetUserByEmailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setEmail(email); err != nil {
		return GetUserByEmailQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByEmailQueryIsNotConstructed)
}

// Email returns the email address being looked up.
func (q GetUserByEmailQuery) Email() string {
	return q.email
}

func (q *GetUserByEmailQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	q.email = email
	return nil
}

// UserCredentialsResponse carries what the login flow needs to verify a
// password and issue a token.
type UserCredentialsResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	PasswordHash string
}

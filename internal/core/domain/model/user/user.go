package user

import (
	"errors"
	"fmt"
	"strings"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents an account that can submit and review travel orders.
//
// The aggregate holds the user's identity, credentials hash, and the set of
// granted capabilities. Permissions are assigned administratively; nothing a
// user does grants permissions to themself.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string

	permissions map[Permission]struct{}

	isConstructed bool
}

// NewUser creates a user with no permissions. The password hash must already
// be computed; the aggregate never sees plaintext credentials.
func NewUser(id kernel.UUID, name string, email string, passwordHash string) (*User, error) {
	u := &User{
		permissions:   make(map[Permission]struct{}),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence with their granted
// permissions.
func RestoreUser(id kernel.UUID, name string, email string, passwordHash string, permissions []Permission) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash)
	if err != nil {
		return nil, err
	}

	for _, p := range permissions {
		if err := u.Grant(p); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Can reports whether the user holds the given permission.
func (u *User) Can(p Permission) bool {
	_, ok := u.permissions[p]
	return ok
}

// Grant adds a permission to the user's capability set. Granting an already
// held permission is a no-op.
func (u *User) Grant(p Permission) error {
	if err := p.Validate(); err != nil {
		return err
	}

	u.permissions[p] = struct{}{}
	return nil
}

// Permissions returns the user's granted capabilities in stable order.
func (u *User) Permissions() []Permission {
	granted := make([]Permission, 0, len(u.permissions))
	for _, p := range AllPermissions() {
		if u.Can(p) {
			granted = append(granted, p)
		}
	}
	return granted
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

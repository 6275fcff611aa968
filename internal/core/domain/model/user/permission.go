package user

import (
	"fmt"

	"travelorders/internal/pkg/errs"
)

// Permission is a named capability granted to a user. Permissions are checked
// independently of any role hierarchy; holding one never implies another.
type Permission string

const (
	// PermissionViewOrders lets a user see orders owned by other users.
	PermissionViewOrders Permission = "view-orders"

	// PermissionUpdateOrder lets a non-owner change an order's status.
	PermissionUpdateOrder Permission = "update-order"

	// PermissionDeleteOrder lets a user cancel any order, including an
	// approved one.
	PermissionDeleteOrder Permission = "delete-order"
)

// AllPermissions lists every grantable capability.
func AllPermissions() []Permission {
	return []Permission{PermissionViewOrders, PermissionUpdateOrder, PermissionDeleteOrder}
}

// PermissionFromString parses a permission name, failing on anything outside
// the closed set.
func PermissionFromString(s string) (Permission, error) {
	for _, p := range AllPermissions() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("permission",
		fmt.Errorf("%q is not a known permission", s))
}

// String returns the permission's wire name.
func (p Permission) String() string {
	return string(p)
}

// Validate checks the permission against the closed set.
func (p Permission) Validate() error {
	_, err := PermissionFromString(string(p))
	return err
}

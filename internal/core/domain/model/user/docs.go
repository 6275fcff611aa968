// Package user provides the User aggregate and its capability set.
//
// Authorization in the travel order system is capability-based: a user holds
// zero or more named permissions (view-orders, update-order, delete-order)
// checked by set membership. There is no role hierarchy and no implication
// between permissions.
package user

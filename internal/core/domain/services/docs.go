// Package services provides domain services that evaluate rules spanning
// multiple aggregates of the travel order system.
//
// The package includes:
//   - OrderPolicy: stateless authorization predicates over (actor, order, action)
//
// Policy predicates hold no state and hit no storage; they are pure
// functions of the actor's capabilities, ownership, and order status,
// which keeps them trivially testable and safe to call anywhere.
package services

// Package kernel provides the shared value objects of the travel order
// domain: UUID identifiers, calendar dates, and travel periods.
//
// All types are immutable value objects constructed through factory
// functions that enforce their invariants. Zero values are invalid and
// detectable via Validate, so aggregates reconstructed from persistence can
// refuse half-initialized state.
package kernel

// Package order provides domain entities and business logic for travel order
// management. It implements the Order aggregate root with lifecycle
// management and the status workflow.
//
// The package includes:
//   - Order: the aggregate root managing identity, travel details, and status
//   - Status: the closed set of order states with a total string parse
//
// Key business rules:
//   - Orders are created in Requested status by their owner
//   - The generic status change accepts any valid status; no transition
//     graph restricts it beyond the enum itself
//   - Cancellation is a status value, never row removal, and an order that
//     is already Canceled cannot be canceled again
//   - A status change landing on Approved or Canceled, when it actually
//     changes the status, requires a notification to the owner; the
//     aggregate reports this, the application layer dispatches it
package order

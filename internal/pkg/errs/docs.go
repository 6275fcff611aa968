// Package errs provides standardized error types for the travel order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the outcomes the API distinguishes:
//   - ValueIsRequiredError: a required value is missing (validation failure)
//   - ValueIsInvalidError: a value is malformed or out of range (validation failure)
//   - ObjectNotFoundError: a lookup matched no object
//   - AccessDeniedError: an authorization policy predicate rejected the actor
//   - BusinessRuleError: a domain rule rejected the operation (expected outcome)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP layer maps these classes onto status codes: validation and
// business-rule failures to 422, access denials to 403, missing objects to 404.
package errs

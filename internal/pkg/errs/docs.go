// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a quantity or amount lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionConflictError: For when an optimistic concurrency check fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain-specific violations (invalid status transitions, over-generation of
// assets, ineligible line items) live next to the domain types that raise
// them; this package holds only the cross-cutting error shapes.
package errs

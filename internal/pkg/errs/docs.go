// Package errs provides standardized error types for the transport order
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: value objects
//   - ValidationError: per-field messages for request payloads
//   - ObjectNotFoundError: an ID that does not resolve to a stored entity
//   - InvalidTransitionError: a status with no successor was advanced
//   - InvalidStateError: an operation the current status does not allow
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// The HTTP adapter maps sentinels to status codes, so new error kinds only
// need a sentinel and an entry in that mapping.
package errs

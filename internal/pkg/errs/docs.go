// Package errs provides standardized error types for the ordering assistant.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - StoreUnavailableError: For when the backing store fails to serve a read or write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// StoreUnavailableError exists so that a transient persistence failure is never
// confused with a legitimately empty result: adapters return it instead of an
// empty slice, and the conversation layer turns it into an apology.
package errs

// Package errs provides standardized error types for the jobly application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the data-access layer raises:
//   - ObjectNotFoundError: an operation referenced an identifier that does not exist
//   - ObjectAlreadyExistsError: a create would duplicate an existing record
//   - EmptyUpdateError: a partial update carried no fields
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - StoreError: any other failure of the backing store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Errors are always propagated to the caller; the HTTP adapter maps the sentinels
// to status codes (client errors to 400, ErrObjectNotFound to 404, the rest to 500).
package errs

// Package errs provides the standardized error types used across the
// fastfoodie application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is works against
//     the sentinel
//
// The sentinels double as the application's error taxonomy: ObjectNotFound
// maps to HTTP 404 at the transport boundary, the value errors map to 400,
// and anything else is treated as a store failure.
package errs

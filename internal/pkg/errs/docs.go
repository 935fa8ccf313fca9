// Package errs provides standardized error types for the restaurant service.
//
// Every error type pairs a sentinel (e.g. ErrObjectNotFound) with a struct that
// carries details, constructors with and without a cause, an Error method and an
// Unwrap method returning the sentinel, so callers can classify failures with
// errors.Is regardless of where they were produced:
//   - ObjectNotFoundError: a referenced menu item, order or reservation does not exist
//   - ValueIsInvalidError: a value failed domain validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ValueIsRequiredError: a mandatory value is missing
//   - AccessDeniedError: the acting principal lacks the capability for an action
package errs

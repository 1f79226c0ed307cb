// Package errs provides standardized error types for the supply-chain service.
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct carrying the details, constructors with
// and without cause, and an Unwrap method so callers classify errors with
// errors.Is instead of type switches.
//
// The taxonomy maps onto the API surface:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: unknown aggregate or entity id
//   - InvalidTransitionError: move outside the status graph
//   - ForbiddenTransitionError, OperationIsForbiddenError: role not permitted
//   - ConflictError: duplicate unique key or lost optimistic update
package errs

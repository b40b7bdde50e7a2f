// Package errs provides the standardized error types used across the
// dispatch service. Every error follows the same shape: a sentinel variable
// for classification, a struct carrying the details, constructors with and
// without a cause, and an Unwrap method so errors.Is resolves the sentinel.
//
// The taxonomy mirrors how callers are expected to react:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     bad input, rejected before any state change.
//   - ObjectNotFoundError: the referenced order, offer, or rider is unknown.
//   - ConflictError: an optimistic precondition failed because a concurrent
//     caller already advanced the same order; treat as stale, re-fetch.
package errs

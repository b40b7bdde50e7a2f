// Package order provides the Order aggregate root of the dispatch domain
// together with its lifecycle state machine and the value objects fixed at
// the moment of creation or acceptance.
//
// The package includes:
//   - Order: the aggregate owning the dispatch lifecycle, the outstanding
//     offer deadline, and the eventual driver assignment
//   - Status: the pending/assigned/accepted/delivered/cancelled state machine
//   - Fare: the immutable commercial breakdown (total, commission, earnings)
//   - VerificationCodes: the pickup/delivery code pair created on acceptance
//
// Key business rules:
//   - the commercial fields are derived once at creation and never change
//   - a driver is recorded only on accepted or delivered orders
//   - exactly the assigned status carries an offer deadline, and that
//     deadline never extends past createdAt + DispatchDeadline
//   - time-dependent behavior compares the caller-supplied instant against
//     stored timestamps, never against in-memory timers
package order

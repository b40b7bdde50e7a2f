// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate.
//
// The package includes:
//   - FareCalculator: prices a trip from its distance via the tier tariff
//   - RouteEligibility: classifies and ranks riders against an order's route
//   - OfferSequencer: picks the next rider and opens the offer window
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services

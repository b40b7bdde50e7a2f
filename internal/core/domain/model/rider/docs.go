// Package rider holds the read-model snapshot of an available courier.
// Riders live in the shared users table and are owned by the identity
// service; this package only models what dispatch needs to rank candidates.
package rider

// Package offer contains the Offer aggregate: one row per rider per order,
// recording that the rider held a time-boxed right of first refusal and how
// it resolved. Offers are append-only per rider, which is what enforces the
// no-re-offer rule during dispatch.
package offer

// Package kernel holds the shared value objects of the dispatch domain:
// validated WGS84 coordinates (GeoPoint) with great-circle distance, and
// UUID identity. Both follow the constructor-guard pattern: the zero value
// is invalid and every instance is built through a validating constructor.
package kernel

package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func geoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func onlineRider(t *testing.T, lat, lng float64) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "rider", "", geoPoint(t, lat, lng))
	require.NoError(t, err)
	return r
}

func testFare(t *testing.T) order.Fare {
	t.Helper()
	fare, err := order.NewFare(63, 9, 54)
	require.NoError(t, err)
	return fare
}

// assignedOrder restores an order holding an outstanding offer whose
// deadline is expiresAt.
func assignedOrder(t *testing.T, createdAt, expiresAt time.Time) *order.Order {
	t.Helper()
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		geoPoint(t, 0, 0), geoPoint(t, 0, 0.05),
		"parcel", 5.6, testFare(t),
		order.Assigned, &expiresAt, createdAt,
	)
	require.NoError(t, err)
	return ord
}

func offeredTo(t *testing.T, ord *order.Order, riderID kernel.UUID) *offer.Offer {
	t.Helper()
	off, err := offer.NewOffer(kernel.NewUUID(), ord.ID(), riderID, ord.CreatedAt())
	require.NoError(t, err)
	return off
}

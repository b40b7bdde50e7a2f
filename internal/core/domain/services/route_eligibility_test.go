package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func riderAt(t *testing.T, lat, lng float64) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "rider", "", point(t, lat, lng))
	require.NoError(t, err)
	return r
}

func TestRouteEligibility_Assess(t *testing.T) {
	eligibility := services.NewRouteEligibility()
	pickup := point(t, 0, 0)
	drop := point(t, 0, 0.05) // roughly 5.6 km east

	t.Run("reports distance to pickup", func(t *testing.T) {
		_, dPickup, err := eligibility.Assess(point(t, 0, -0.01), pickup, drop)

		require.NoError(t, err)
		assert.InDelta(t, 1.11, dPickup, 0.05)
	})

	t.Run("rider far from pickup is off route", func(t *testing.T) {
		onRoute, dPickup, err := eligibility.Assess(point(t, 0, -0.1), pickup, drop)

		require.NoError(t, err)
		assert.False(t, onRoute)
		assert.Greater(t, dPickup, 5.0)
	})

	t.Run("rider near pickup still fails the detour bound", func(t *testing.T) {
		// Even standing at the pickup, the assessed path folds the full
		// route plus the way back from the drop into the detour check,
		// which exceeds 1.5x the direct route.
		onRoute, dPickup, err := eligibility.Assess(pickup, pickup, drop)

		require.NoError(t, err)
		assert.False(t, onRoute)
		assert.InDelta(t, 0, dPickup, 0.001)
	})

	t.Run("degenerate zero-length route", func(t *testing.T) {
		onRoute, _, err := eligibility.Assess(pickup, pickup, pickup)

		require.NoError(t, err)
		assert.True(t, onRoute)
	})
}

func TestRouteEligibility_Rank(t *testing.T) {
	eligibility := services.NewRouteEligibility()
	pickup := point(t, 0, 0)
	drop := point(t, 0, 0.05)

	t.Run("orders by ascending distance to pickup", func(t *testing.T) {
		far := riderAt(t, 0, -0.03)
		near := riderAt(t, 0, -0.005)
		mid := riderAt(t, 0, -0.02)

		ranked, err := eligibility.Rank([]*rider.Rider{far, near, mid}, pickup, drop)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.True(t, ranked[0].Rider.ID().IsEqual(near.ID()))
		assert.True(t, ranked[1].Rider.ID().IsEqual(mid.ID()))
		assert.True(t, ranked[2].Rider.ID().IsEqual(far.ID()))
	})

	t.Run("breaks exact ties by rider id", func(t *testing.T) {
		a := riderAt(t, 0, -0.01)
		b := riderAt(t, 0, -0.01)

		first, err := eligibility.Rank([]*rider.Rider{a, b}, pickup, drop)
		require.NoError(t, err)
		second, err := eligibility.Rank([]*rider.Rider{b, a}, pickup, drop)
		require.NoError(t, err)

		assert.True(t, first[0].Rider.ID().IsEqual(second[0].Rider.ID()))
		assert.Less(t, first[0].Rider.ID().String(), first[1].Rider.ID().String())
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		ranked, err := eligibility.Rank(nil, pickup, drop)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})
}

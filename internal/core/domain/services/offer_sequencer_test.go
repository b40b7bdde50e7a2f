package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	fare, err := services.NewFareCalculator().Calculate(5.6)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		point(t, 0, 0), point(t, 0, 0.05),
		"documents", 5.6, fare, createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestOfferSequencer_Next(t *testing.T) {
	sequencer := services.NewOfferSequencer()

	t.Run("offers to the nearest rider and opens the window", func(t *testing.T) {
		now := time.Now().UTC()
		ord := pendingOrder(t, now)
		near := riderAt(t, 0, -0.005)
		far := riderAt(t, 0, -0.03)

		created, err := sequencer.Next(ord, []*rider.Rider{far, near}, now)

		require.NoError(t, err)
		assert.True(t, created.RiderID().IsEqual(near.ID()))
		assert.True(t, created.OrderID().IsEqual(ord.ID()))
		assert.Equal(t, offer.Offered, created.Status())
		assert.Equal(t, order.Assigned, ord.Status())
		require.NotNil(t, ord.OfferExpiresAt())
		assert.Equal(t, now.Add(order.OfferWindow), *ord.OfferExpiresAt())
	})

	t.Run("fails with no riders", func(t *testing.T) {
		now := time.Now().UTC()
		ord := pendingOrder(t, now)

		_, err := sequencer.Next(ord, nil, now)

		require.ErrorIs(t, err, services.ErrNoRidersAvailable)
		assert.Equal(t, order.Pending, ord.Status())
	})

	t.Run("fails when the global budget is spent", func(t *testing.T) {
		now := time.Now().UTC()
		ord := pendingOrder(t, now)

		_, err := sequencer.Next(ord, []*rider.Rider{riderAt(t, 0, 0)}, ord.GlobalDeadline())

		require.ErrorIs(t, err, order.ErrOfferWindowClosed)
		assert.Equal(t, order.Pending, ord.Status())
	})

	t.Run("fails on an accepted order", func(t *testing.T) {
		now := time.Now().UTC()
		ord := pendingOrder(t, now)
		_, err := ord.BeginOffer(now)
		require.NoError(t, err)
		require.NoError(t, ord.Accept(kernel.NewUUID()))

		_, err = sequencer.Next(ord, []*rider.Rider{riderAt(t, 0, 0)}, now)

		require.Error(t, err)
	})

	t.Run("fails on a non-constructed order", func(t *testing.T) {
		var ord *order.Order

		_, err := sequencer.Next(ord, []*rider.Rider{riderAt(t, 0, 0)}, time.Now().UTC())

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFare(t *testing.T) {
	t.Run("should create fare when parts sum to total", func(t *testing.T) {
		fare, err := order.NewFare(75, 11, 64)

		require.NoError(t, err)
		require.NoError(t, fare.Validate())
		assert.Equal(t, 75, fare.TotalPrice())
		assert.Equal(t, 11, fare.Commission())
		assert.Equal(t, 64, fare.RiderEarnings())
	})

	t.Run("should allow zero commission", func(t *testing.T) {
		fare, err := order.NewFare(30, 0, 30)

		require.NoError(t, err)
		assert.Equal(t, 30, fare.RiderEarnings())
	})

	t.Run("should fail when parts do not sum to total", func(t *testing.T) {
		_, err := order.NewFare(75, 11, 63)

		require.Error(t, err)
	})

	t.Run("should fail on negative amounts", func(t *testing.T) {
		_, err := order.NewFare(-1, 0, -1)
		require.Error(t, err)

		_, err = order.NewFare(10, -5, 15)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var fare order.Fare

		require.ErrorIs(t, fare.Validate(), order.ErrFareIsNotConstructed)
	})
}

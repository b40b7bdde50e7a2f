package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	pickup := geoPoint(t, 12.9716, 77.5946)
	drop := geoPoint(t, 12.9352, 77.6245)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		requesterID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, requesterID, pickup, drop, "books")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.RequesterID().IsEqual(requesterID))
		pickupEqual, err := cmd.Pickup().IsEqual(pickup)
		require.NoError(t, err)
		assert.True(t, pickupEqual)
		dropEqual, err := cmd.Drop().IsEqual(drop)
		require.NoError(t, err)
		assert.True(t, dropEqual)
		assert.Equal(t, "books", cmd.PackageDetails())
	})

	t.Run("should allow empty package details", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pickup, drop, "")

		require.NoError(t, err)
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := commands.NewCreateOrderCommand(invalid, kernel.NewUUID(), pickup, drop, "")
		require.Error(t, err)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), invalid, pickup, drop, "")
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed coordinates", func(t *testing.T) {
		var missing kernel.GeoPoint

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), missing, drop, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup")

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pickup, missing, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "drop")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

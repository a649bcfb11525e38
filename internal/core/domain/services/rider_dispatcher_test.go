package services_test

import (
	"testing"

	"fastfoodie/internal/core/domain/model/rider"
	"fastfoodie/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreRider(t *testing.T, id int64, available bool) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(id, "Test Rider", "555-0101", "bike", available)
	require.NoError(t, err)
	return r
}

func TestRiderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewRiderDispatcher()

	t.Run("should claim the first available candidate", func(t *testing.T) {
		first := restoreRider(t, 1, true)
		second := restoreRider(t, 2, true)

		claimed, err := dispatcher.Dispatch([]*rider.Rider{first, second})

		require.NoError(t, err)
		assert.Same(t, first, claimed)
		assert.False(t, first.IsAvailable())
		assert.True(t, second.IsAvailable())
	})

	t.Run("should skip already claimed candidates", func(t *testing.T) {
		busy := restoreRider(t, 1, false)
		free := restoreRider(t, 2, true)

		claimed, err := dispatcher.Dispatch([]*rider.Rider{busy, free})

		require.NoError(t, err)
		assert.Same(t, free, claimed)
	})

	t.Run("should never hand out the same rider twice", func(t *testing.T) {
		candidates := []*rider.Rider{
			restoreRider(t, 1, true),
			restoreRider(t, 2, true),
		}

		first, err := dispatcher.Dispatch(candidates)
		require.NoError(t, err)
		second, err := dispatcher.Dispatch(candidates)
		require.NoError(t, err)

		assert.NotSame(t, first, second)

		_, err = dispatcher.Dispatch(candidates)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoAvailableRider)
	})

	t.Run("should return error for empty candidate set", func(t *testing.T) {
		claimed, err := dispatcher.Dispatch(nil)

		require.Error(t, err)
		assert.Nil(t, claimed)
		assert.ErrorIs(t, err, services.ErrNoAvailableRider)
	})

	t.Run("should reject unconstructed candidates", func(t *testing.T) {
		claimed, err := dispatcher.Dispatch([]*rider.Rider{{}})

		require.Error(t, err)
		assert.Nil(t, claimed)
		assert.ErrorIs(t, err, rider.ErrRiderIsNotConstructed)
	})
}

package rider_test

import (
	"testing"

	"fastfoodie/internal/core/domain/model/rider"
	"fastfoodie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("should create available rider", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "bike")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Zero(t, r.ID())
		assert.Equal(t, "John Doe", r.Name())
		assert.Equal(t, "555-0101", r.Phone())
		assert.Equal(t, "bike", r.VehicleType())
		assert.True(t, r.IsAvailable())
	})

	t.Run("should allow empty vehicle type", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "")

		require.NoError(t, err)
		assert.Empty(t, r.VehicleType())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		r, err := rider.NewRider("", "555-0101", "bike")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for empty phone", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "", "bike")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("should rebuild rider from persisted state", func(t *testing.T) {
		r, err := rider.RestoreRider(7, "John Doe", "555-0101", "bike", false)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, int64(7), r.ID())
		assert.False(t, r.IsAvailable())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		r, err := rider.RestoreRider(0, "John Doe", "555-0101", "bike", true)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRider_AssignID(t *testing.T) {
	t.Run("should assign id exactly once", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "bike")
		require.NoError(t, err)

		require.NoError(t, r.AssignID(7))
		assert.Equal(t, int64(7), r.ID())

		err = r.AssignID(8)
		require.Error(t, err)
		assert.ErrorIs(t, err, rider.ErrRiderAlreadyPersisted)
		assert.Equal(t, int64(7), r.ID())
	})
}

func TestRider_ClaimAndRelease(t *testing.T) {
	t.Run("should claim available rider", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "bike")
		require.NoError(t, err)

		require.NoError(t, r.Claim())
		assert.False(t, r.IsAvailable())
	})

	t.Run("should reject claiming a busy rider", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "bike")
		require.NoError(t, err)
		require.NoError(t, r.Claim())

		err = r.Claim()

		require.Error(t, err)
		assert.ErrorIs(t, err, rider.ErrRiderNotAvailable)
	})

	t.Run("should release rider back to the pool", func(t *testing.T) {
		r, err := rider.NewRider("John Doe", "555-0101", "bike")
		require.NoError(t, err)
		require.NoError(t, r.Claim())

		r.Release()
		assert.True(t, r.IsAvailable())

		// releasing again is a no-op
		r.Release()
		assert.True(t, r.IsAvailable())
	})
}

func TestRider_SetAvailability(t *testing.T) {
	r, err := rider.NewRider("John Doe", "555-0101", "bike")
	require.NoError(t, err)

	r.SetAvailability(false)
	assert.False(t, r.IsAvailable())

	r.SetAvailability(true)
	assert.True(t, r.IsAvailable())
}

func TestRider_Validate(t *testing.T) {
	t.Run("should reject zero-value rider", func(t *testing.T) {
		var r rider.Rider
		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, rider.ErrRiderIsNotConstructed)
	})
}

package queries_test

import (
	"testing"

	"fastfoodie/internal/core/application/usecases/queries"
	"fastfoodie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderDeliveryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderDeliveryQuery(42)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.OrderID())
}

func TestNewGetOrderDeliveryQuery_InvalidOrderID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := queries.NewGetOrderDeliveryQuery(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}

func TestGetOrderDeliveryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderDeliveryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderDeliveryQueryIsNotConstructed)
}

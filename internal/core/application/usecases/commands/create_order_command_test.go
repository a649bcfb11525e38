package commands_test

import (
	"testing"

	"fastfoodie/internal/core/application/usecases/commands"
	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	cmd := validCreateOrderCommand(t)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.CustomerID())
	assert.Equal(t, int64(3), cmd.RestaurantID())
	assert.Len(t, cmd.Items(), 2)
	assert.Empty(t, cmd.PaymentMethod())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	items := []commands.LineItem{{MenuItemID: 1, Quantity: 1, Price: decimal.NewFromInt(5)}}

	tests := []struct {
		name string
		fn   func() (commands.CreateOrderCommand, error)
		want error
	}{
		{
			name: "zero customer id",
			fn: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(0, 3, decimal.NewFromInt(5), "12 Main St", "", "", items)
			},
			want: errs.ErrValueIsRequired,
		},
		{
			name: "zero restaurant id",
			fn: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(5, 0, decimal.NewFromInt(5), "12 Main St", "", "", items)
			},
			want: errs.ErrValueIsRequired,
		},
		{
			name: "non-positive total",
			fn: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(5, 3, decimal.Zero, "12 Main St", "", "", items)
			},
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "empty address",
			fn: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(5, 3, decimal.NewFromInt(5), "", "", "", items)
			},
			want: errs.ErrValueIsRequired,
		},
		{
			name: "no items",
			fn: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(5, 3, decimal.NewFromInt(5), "12 Main St", "", "", nil)
			},
			want: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

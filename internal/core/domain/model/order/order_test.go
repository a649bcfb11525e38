package order_test

import (
	"testing"
	"time"

	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidItems(t *testing.T) []order.Item {
	t.Helper()
	item1, err := order.NewItem(1, 2, decimal.NewFromFloat(8.50))
	require.NoError(t, err)
	item2, err := order.NewItem(3, 1, decimal.NewFromFloat(4.50))
	require.NoError(t, err)
	return []order.Item{item1, item2}
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		5, 3, decimal.NewFromFloat(21.50), "12 Main St", "no onions",
		createValidItems(t), "card")
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with items and payment", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.Validate())
		assert.Zero(t, o.ID())
		assert.Equal(t, int64(5), o.CustomerID())
		assert.Equal(t, int64(3), o.RestaurantID())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.TotalAmount().Equal(decimal.NewFromFloat(21.50)))
		assert.Equal(t, "12 Main St", o.DeliveryAddress())
		assert.Equal(t, "no onions", o.SpecialInstructions())
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.OrderDate().IsZero())
		assert.Equal(t, o.OrderDate(), o.UpdatedAt())

		assert.Equal(t, "card", o.Payment().Method())
		assert.Equal(t, order.PaymentPending, o.Payment().Status())
		assert.True(t, o.Payment().Amount().Equal(o.TotalAmount()))
	})

	t.Run("should default payment method to cash on delivery", func(t *testing.T) {
		o, err := order.NewOrder(
			5, 3, decimal.NewFromFloat(21.50), "12 Main St", "",
			createValidItems(t), "")

		require.NoError(t, err)
		assert.Equal(t, order.DefaultPaymentMethod, o.Payment().Method())
	})

	t.Run("should return error for invalid fields", func(t *testing.T) {
		testCases := []struct {
			name         string
			customerID   int64
			restaurantID int64
			totalAmount  decimal.Decimal
			address      string
			items        []order.Item
			expected     error
		}{
			{"zero customer id", 0, 3, decimal.NewFromFloat(21.50), "12 Main St", createValidItems(t), errs.ErrValueIsInvalid},
			{"negative restaurant id", 5, -1, decimal.NewFromFloat(21.50), "12 Main St", createValidItems(t), errs.ErrValueIsInvalid},
			{"non-positive total", 5, 3, decimal.Zero, "12 Main St", createValidItems(t), errs.ErrValueIsInvalid},
			{"empty address", 5, 3, decimal.NewFromFloat(21.50), "", createValidItems(t), errs.ErrValueIsRequired},
			{"no items", 5, 3, decimal.NewFromFloat(21.50), "12 Main St", nil, errs.ErrValueIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(
					tc.customerID, tc.restaurantID, tc.totalAmount, tc.address, "",
					tc.items, "")

				require.Error(t, err)
				assert.Nil(t, o)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("should assign id exactly once", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.AssignID(42))
		assert.Equal(t, int64(42), o.ID())

		err := o.AssignID(43)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyPersisted)
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.AssignID(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the happy path and stamp updatedAt", func(t *testing.T) {
		o := createValidOrder(t)
		createdAt := o.UpdatedAt()

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.UpdatedAt().After(createdAt) || o.UpdatedAt().Equal(createdAt))
	})

	t.Run("should allow re-queueing an out-for-delivery order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should reject skipping statuses", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ChangeStatus(order.Delivered)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Preparing)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild order from persisted state", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		items := createValidItems(t)
		payment := order.RestorePayment(7, "card", order.PaymentCompleted, decimal.NewFromFloat(21.50))

		o, err := order.RestoreOrder(
			42, 5, 3, decimal.NewFromFloat(21.50), "12 Main St", "",
			order.OutForDelivery, now, now, items, payment)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, now, o.OrderDate())
		assert.Equal(t, int64(7), o.Payment().ID())
		assert.Equal(t, order.PaymentCompleted, o.Payment().Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		now := time.Now().UTC()

		o, err := order.RestoreOrder(
			42, 5, 3, decimal.NewFromFloat(21.50), "12 Main St", "",
			order.Unknown, now, now, createValidItems(t), order.Payment{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero-value order", func(t *testing.T) {
		var o order.Order
		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item snapshot", func(t *testing.T) {
		item, err := order.NewItem(7, 3, decimal.NewFromFloat(4.25))

		require.NoError(t, err)
		assert.Equal(t, int64(7), item.MenuItemID())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(4.25)))
	})

	t.Run("should allow zero price", func(t *testing.T) {
		_, err := order.NewItem(7, 1, decimal.Zero)
		require.NoError(t, err)
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		testCases := []struct {
			name       string
			menuItemID int64
			quantity   int
			price      decimal.Decimal
		}{
			{"zero menu item id", 0, 1, decimal.NewFromFloat(4.25)},
			{"zero quantity", 7, 0, decimal.NewFromFloat(4.25)},
			{"negative quantity", 7, -2, decimal.NewFromFloat(4.25)},
			{"negative price", 7, 1, decimal.NewFromFloat(-0.01)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(tc.menuItemID, tc.quantity, tc.price)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("should create pending payment", func(t *testing.T) {
		payment, err := order.NewPayment("card", decimal.NewFromFloat(21.50))

		require.NoError(t, err)
		assert.Equal(t, "card", payment.Method())
		assert.Equal(t, order.PaymentPending, payment.Status())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		_, err := order.NewPayment("card", decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package order

import (
	"errors"
	"fmt"

	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is an immutable snapshot of one ordered line: the menu item id, the
// quantity and the price at order time. Menu price changes after ingestion
// never affect existing orders.
type Item struct {
	menuItemID int64
	quantity   int
	price      decimal.Decimal
}

// NewItem creates a validated line-item snapshot.
func NewItem(menuItemID int64, quantity int, price decimal.Decimal) (Item, error) {
	var item Item

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the per-unit price captured at order time.
func (i Item) Price() decimal.Decimal {
	return i.price
}

func (i *Item) setMenuItemID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemID",
			fmt.Errorf("%d is not a valid menu item id", id))
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

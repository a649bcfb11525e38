package queries

import (
	"errors"
	"time"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest
// first, with the restaurant's display fields joined in.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery validates and creates an order history query.
func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is being read.
func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}

func (q *GetCustomerOrdersQuery) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	q.customerID = id
	return nil
}

// GetCustomerOrdersQueryResponse is a single row of the customer's order
// history read model.
type GetCustomerOrdersQueryResponse struct {
	OrderID            int64
	RestaurantID       int64
	RestaurantName     string
	RestaurantLocation string
	Status             string
	TotalAmount        decimal.Decimal
	CreatedAt          time.Time
}

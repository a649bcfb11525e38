package order

import (
	"fmt"

	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is used when ingestion receives no payment method.
const DefaultPaymentMethod = "COD"

// Payment statuses. A payment is created pending together with its order and
// completed by the payment flow later.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Payment is the single payment record owned by an order. It is created in
// the same transaction as the order and its line items.
type Payment struct {
	id     int64
	method string
	status string
	amount decimal.Decimal
}

// NewPayment creates a pending payment for the given amount. An empty method
// falls back to DefaultPaymentMethod (cash on delivery).
func NewPayment(method string, amount decimal.Decimal) (Payment, error) {
	if method == "" {
		method = DefaultPaymentMethod
	}
	if !amount.IsPositive() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return Payment{
		method: method,
		status: PaymentPending,
		amount: amount,
	}, nil
}

// RestorePayment rebuilds a payment from its persisted state.
func RestorePayment(id int64, method, status string, amount decimal.Decimal) Payment {
	return Payment{
		id:     id,
		method: method,
		status: status,
		amount: amount,
	}
}

// ID returns the payment's store identifier (0 until persisted).
func (p Payment) ID() int64 {
	return p.id
}

// Method returns the payment method.
func (p Payment) Method() string {
	return p.method
}

// Status returns the payment status.
func (p Payment) Status() string {
	return p.status
}

// Amount returns the payment amount.
func (p Payment) Amount() decimal.Decimal {
	return p.amount
}

// Package order contains the Order aggregate: the order row itself, its
// immutable line-item snapshots and the payment record created with it.
//
// Order status is a closed state machine. Transitions are validated against
// an explicit table; anything outside the table is rejected rather than
// silently accepted, so free-form status strings can never reach the store.
package order

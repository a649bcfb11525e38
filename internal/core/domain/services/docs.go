// Package services contains domain services that coordinate behavior across
// aggregates. RiderDispatcher selects and claims a rider for a delivery;
// keeping the selection here lets both the order state machine and the
// background recovery sweep share one policy.
package services

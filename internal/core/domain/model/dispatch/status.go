package dispatch

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispatch order.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──> Delivered
//	          │                      ^
//	          └──────────────────────┘
//
// Delivered is terminal: no transition leaves it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a dispatch order is created.
	// The shipment is still at the warehouse.
	Pending

	// InTransit indicates the shipment has left the warehouse.
	InTransit

	// Delivered indicates the shipment reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their persisted string form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in-transit",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in-transit",
		Delivered: "delivered",
	}
}

// getTransitions returns the explicit transition table of the dispatch state machine.
// A status missing from the table, or an empty target set, permits no transition.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {InTransit, Delivered},
		InTransit: {Delivered},
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InTransit, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is invalid")
	}
	return nil
}

// String returns the persisted string form of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the persisted string form back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status is invalid")
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether the transition table permits moving
// from the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target if the transition table permits it.
//
// Returns:
//   - (target, nil) on a permitted transition
//   - (Unknown, error) if target is not a valid status or not reachable
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

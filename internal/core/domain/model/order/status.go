package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Completed
//	          │                 │
//	          └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Stock has been reserved; the order awaits dispatch.
	Pending

	// Processing indicates a dispatch order has been created for the order.
	Processing

	// Completed indicates the associated dispatch was delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled and its reserved stock
	// restored. This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their persisted string form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the explicit transition table of the order state machine.
// A status missing from the table, or an empty target set, permits no transition.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Processing, Completed, Cancelled.
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
// Used when reconstructing orders from the database and when callers
// submit a target status by name.
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
	return s == Completed || s == Cancelled
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

package audit

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Action identifies the kind of mutation an audit entry records.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	// This value (0) helps catch uninitialized Action values.
	UnknownAction Action = iota

	// Created is recorded once, when an entity is first persisted.
	Created

	// Updated is recorded when entity fields change outside the status
	// state machine and the stock ledger.
	Updated

	// StatusChanged is recorded on every state machine transition.
	StatusChanged

	// StockAdjusted is recorded by the stock ledger on every reservation
	// and release of inventory quantity.
	StockAdjusted
)

// getActionStrings returns a map of Action values to their persisted string form.
func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction: "unknown",
		Created:       "created",
		Updated:       "updated",
		StatusChanged: "status-changed",
		StockAdjusted: "stock-adjusted",
	}
}

// getValidActionStrings returns a map of only valid Action values.
func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // UnknownAction is intentionally excluded as it's invalid
	return map[Action]string{
		Created:       "created",
		Updated:       "updated",
		StatusChanged: "status-changed",
		StockAdjusted: "stock-adjusted",
	}
}

// Validate checks if the Action value is one of the defined actions.
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the persisted string form of the action.
// Implements fmt.Stringer and is safe on any Action value.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// ActionFromString parses the persisted string form back into an Action.
// Used when reconstructing history from the database.
func ActionFromString(s string) (Action, error) {
	for action, str := range getValidActionStrings() {
		if str == s {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a valid action", s))
}

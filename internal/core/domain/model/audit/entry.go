package audit

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Details is the free-form payload of an audit entry. It captures whatever
// context the mutation needs to stay attributable: before/after values,
// reserved quantities, the order that triggered a stock adjustment.
type Details map[string]any

// Entry is an immutable record of a single mutation: action, actor,
// timestamp, and a detail payload. Entries are append-only; once created
// they are never edited or removed.
//
// Entry follows these invariants:
//   - Must have a valid unique identifier
//   - Action must be one of the defined audit actions
//   - Actor must be a valid identity (the core records it, never authenticates it)
//   - Timestamp is assigned at creation and never changes
type Entry struct {
	id        kernel.UUID
	action    Action
	actor     kernel.UUID
	timestamp time.Time
	details   Details
}

// NewEntry creates an audit entry for the given action and actor, stamped
// with the current UTC time. The details payload may be nil.
//
// This is the single append contract of the audit trail: no validation is
// performed beyond requiring a valid action and a non-empty actor identity.
func NewEntry(action Action, actor kernel.UUID, details Details) (Entry, error) {
	if err := action.Validate(); err != nil {
		return Entry{}, err
	}
	if err := actor.Validate(); err != nil {
		return Entry{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return Entry{
		id:        kernel.NewUUID(),
		action:    action,
		actor:     actor,
		timestamp: time.Now().UTC(),
		details:   details,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
// Unlike NewEntry it keeps the original identifier and timestamp.
func RestoreEntry(id kernel.UUID, action Action, actor kernel.UUID, timestamp time.Time, details Details) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if err := action.Validate(); err != nil {
		return Entry{}, err
	}
	if err := actor.Validate(); err != nil {
		return Entry{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return Entry{
		id:        id,
		action:    action,
		actor:     actor,
		timestamp: timestamp,
		details:   details,
	}, nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// Action returns the kind of mutation this entry records.
func (e Entry) Action() Action {
	return e.action
}

// Actor returns the identity that performed the mutation.
func (e Entry) Actor() kernel.UUID {
	return e.actor
}

// Timestamp returns when the mutation happened.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}

// Details returns the free-form detail payload. May be nil.
func (e Entry) Details() Details {
	return e.details
}

// ChangeDetails builds the payload recorded by field updates:
// the values before and after the mutation.
func ChangeDetails(oldValues, newValues map[string]any) Details {
	return Details{
		"oldValues": oldValues,
		"newValues": newValues,
	}
}

// StatusChangeDetails builds the payload recorded by state machine transitions.
func StatusChangeDetails(oldStatus, newStatus string) Details {
	return Details{
		"oldStatus": oldStatus,
		"newStatus": newStatus,
	}
}

// ReservationDetails builds the payload recorded when the stock ledger
// decrements quantity on behalf of an order.
func ReservationDetails(orderID kernel.UUID, quantityReduced int) Details {
	return Details{
		"orderId":         orderID.String(),
		"quantityReduced": quantityReduced,
	}
}

// RestorationDetails builds the payload recorded when the stock ledger
// restores quantity after an order is cancelled.
func RestorationDetails(orderID kernel.UUID, quantityRestored int) Details {
	return Details{
		"orderId":          orderID.String(),
		"quantityRestored": quantityRestored,
	}
}

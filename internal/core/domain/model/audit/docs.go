// Package audit implements the append-only history attached to every mutable
// entity in the fulfillment domain.
//
// An audit entry records who (actor), what (action), when (timestamp), and a
// free-form detail payload capturing before/after values or deltas. Entries
// are immutable value objects: an "update" to an entity appends a new entry
// whose details carry {oldValues, newValues}; history is never rewritten.
//
// Entries have no independent lifecycle. They are owned exclusively by the
// aggregate whose history they belong to and are persisted and loaded with it.
package audit

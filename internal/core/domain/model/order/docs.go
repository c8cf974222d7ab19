// Package order contains the Order aggregate and its status state machine.
//
// An order is created in "pending" status after the stock ledger has reserved
// every line item. Its total amount is computed once at creation from
// ledger-priced snapshots and never recomputed. Status changes follow an
// explicit transition table; "completed" and "cancelled" are terminal.
// Orders are never deleted.
package order

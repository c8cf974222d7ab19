// Package inventory contains the Item aggregate: the stock record the ledger
// operates on.
//
// An item's quantity is never mutated except through a ledger operation
// (reserve/release, executed by the repository as a single conditional
// update) and never goes below zero. Direct field edits go through
// an explicit allow-list patch (name, category, storage location, unit price);
// quantity and product code are deliberately not patchable. Every mutation
// appends an entry to the item's audit history.
package inventory

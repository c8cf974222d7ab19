// Package dispatch contains the dispatch order aggregate and its
// supporting value objects.
//
// A DispatchOrder represents the shipment of exactly one customer order.
// The one-to-one relationship is enforced both here (the aggregate carries
// the order's identifier) and by a unique database constraint on order_id.
//
// Dispatch orders move through a small state machine
// (Pending -> InTransit -> Delivered, with a direct Pending -> Delivered
// shortcut for same-day handoffs) and carry a Tracking value object that
// records the shipment's last known location.
package dispatch

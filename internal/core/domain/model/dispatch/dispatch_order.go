package dispatch

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDispatchOrderIsNotConstructed is returned when a DispatchOrder instance was
	// not created through the NewDispatchOrder factory method.
	ErrDispatchOrderIsNotConstructed = errors.New("DispatchOrder must be created via NewDispatchOrder constructor")
)

// DispatchOrder represents the shipment of exactly one customer order.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty dispatch number
//   - References exactly one order; a second dispatch for the same order
//     is rejected by the storage layer's unique constraint
//   - Status transitions follow the explicit transition table in Status
//   - Every mutation appends an audit entry; history is never rewritten
type DispatchOrder struct {
	// id is the unique identifier for the dispatch order
	id kernel.UUID

	// dispatchNumber is the system-generated, immutable business identifier
	dispatchNumber string

	// orderID references the customer order being shipped
	orderID kernel.UUID

	// vehicle identifies the assigned delivery vehicle
	vehicle string

	// estimatedDeliveryDate is when the shipment is expected to arrive
	estimatedDeliveryDate time.Time

	// tracking is the shipment's last known location
	tracking Tracking

	// status represents the current state in the dispatch lifecycle
	status Status

	// history is the append-only audit trail
	history []audit.Entry

	// isConstructed ensures the dispatch order was created via a constructor
	isConstructed bool
}

// NewDispatchOrder creates a new DispatchOrder in Pending status, with
// tracking initialized to the warehouse, and records a "created" audit
// entry attributed to actor.
//
// The caller is responsible for verifying the referenced order exists and
// for transitioning it to Processing within the same unit of work.
func NewDispatchOrder(
	id kernel.UUID,
	dispatchNumber string,
	orderID kernel.UUID,
	vehicle string,
	estimatedDeliveryDate time.Time,
	actor kernel.UUID,
) (*DispatchOrder, error) {
	dispatchOrder := &DispatchOrder{
		tracking:      NewTracking(),
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		dispatchOrder.setID(id),
		dispatchOrder.setDispatchNumber(dispatchNumber),
		dispatchOrder.setOrderID(orderID),
		dispatchOrder.setVehicle(vehicle),
		dispatchOrder.setEstimatedDeliveryDate(estimatedDeliveryDate),
	); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(audit.Created, actor, audit.Details{
		"dispatchNumber":        dispatchNumber,
		"orderId":               orderID.String(),
		"vehicle":               vehicle,
		"estimatedDeliveryDate": estimatedDeliveryDate.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	dispatchOrder.history = append(dispatchOrder.history, entry)

	return dispatchOrder, nil
}

// RestoreDispatchOrder reconstructs a DispatchOrder from persistence,
// including its history. No audit entry is appended.
func RestoreDispatchOrder(
	id kernel.UUID,
	dispatchNumber string,
	orderID kernel.UUID,
	vehicle string,
	estimatedDeliveryDate time.Time,
	tracking Tracking,
	status Status,
	history []audit.Entry,
) (*DispatchOrder, error) {
	dispatchOrder := &DispatchOrder{
		tracking:      tracking,
		history:       history,
		isConstructed: true,
	}

	if err := errors.Join(
		dispatchOrder.setID(id),
		dispatchOrder.setDispatchNumber(dispatchNumber),
		dispatchOrder.setOrderID(orderID),
		dispatchOrder.setVehicle(vehicle),
		dispatchOrder.setEstimatedDeliveryDate(estimatedDeliveryDate),
		dispatchOrder.setStatus(status),
	); err != nil {
		return nil, err
	}

	return dispatchOrder, nil
}

// Patch is the explicit allow-list of fields a dispatch order update may touch.
// A nil field means "leave unchanged". The dispatch number and order reference
// are immutable and deliberately absent.
type Patch struct {
	Vehicle               *string
	EstimatedDeliveryDate *time.Time
	TrackingLocation      *string
	Status                *Status
}

// ApplyPatch applies the allow-listed fields of patch and appends a single
// "updated" audit entry listing the old and new values of every field that
// actually changed. A patch that changes nothing appends no entry.
//
// A status change is validated against the transition table before anything
// is applied. Detecting a transition to Delivered (so the customer order can
// be completed in the same unit of work) is the caller's job via IsDelivered.
func (d *DispatchOrder) ApplyPatch(patch Patch, actor kernel.UUID) error {
	oldValues := audit.Details{}
	newValues := audit.Details{}

	if patch.Status != nil && *patch.Status != d.status {
		if _, err := d.status.TransitionTo(*patch.Status); err != nil {
			return err
		}
	}

	var newTracking *Tracking
	if patch.TrackingLocation != nil && *patch.TrackingLocation != d.tracking.CurrentLocation() {
		moved, err := d.tracking.MoveTo(*patch.TrackingLocation)
		if err != nil {
			return err
		}
		newTracking = &moved
	}

	if patch.Vehicle != nil && *patch.Vehicle != d.vehicle {
		if *patch.Vehicle == "" {
			return errs.NewValueIsRequiredError("vehicle")
		}
		oldValues["vehicle"] = d.vehicle
		newValues["vehicle"] = *patch.Vehicle
		d.vehicle = *patch.Vehicle
	}

	if patch.EstimatedDeliveryDate != nil && !patch.EstimatedDeliveryDate.Equal(d.estimatedDeliveryDate) {
		if patch.EstimatedDeliveryDate.IsZero() {
			return errs.NewValueIsRequiredError("estimatedDeliveryDate")
		}
		oldValues["estimatedDeliveryDate"] = d.estimatedDeliveryDate.UTC().Format(time.RFC3339)
		newValues["estimatedDeliveryDate"] = patch.EstimatedDeliveryDate.UTC().Format(time.RFC3339)
		d.estimatedDeliveryDate = *patch.EstimatedDeliveryDate
	}

	if newTracking != nil {
		oldValues["currentLocation"] = d.tracking.CurrentLocation()
		newValues["currentLocation"] = newTracking.CurrentLocation()
		d.tracking = *newTracking
	}

	if patch.Status != nil && *patch.Status != d.status {
		oldValues["status"] = d.status.String()
		newValues["status"] = patch.Status.String()
		d.status = *patch.Status
	}

	if len(newValues) == 0 {
		return nil
	}

	entry, err := audit.NewEntry(audit.Updated, actor, audit.ChangeDetails(oldValues, newValues))
	if err != nil {
		return err
	}
	d.history = append(d.history, entry)

	return nil
}

// Validate ensures the DispatchOrder instance was properly constructed.
func (d *DispatchOrder) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDispatchOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two dispatch orders by their unique identifiers.
func (d *DispatchOrder) IsEqual(other *DispatchOrder) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispatch order's unique identifier.
func (d *DispatchOrder) ID() kernel.UUID {
	return d.id
}

// DispatchNumber returns the system-generated business identifier.
func (d *DispatchOrder) DispatchNumber() string {
	return d.dispatchNumber
}

// OrderID returns the identifier of the customer order being shipped.
func (d *DispatchOrder) OrderID() kernel.UUID {
	return d.orderID
}

// Vehicle returns the assigned delivery vehicle.
func (d *DispatchOrder) Vehicle() string {
	return d.vehicle
}

// EstimatedDeliveryDate returns when the shipment is expected to arrive.
func (d *DispatchOrder) EstimatedDeliveryDate() time.Time {
	return d.estimatedDeliveryDate
}

// Tracking returns the shipment's last known location.
func (d *DispatchOrder) Tracking() Tracking {
	return d.tracking
}

// Status returns the current status of the dispatch order.
func (d *DispatchOrder) Status() Status {
	return d.status
}

// IsDelivered reports whether the shipment has reached the customer.
func (d *DispatchOrder) IsDelivered() bool {
	return d.status == Delivered
}

// History returns the dispatch order's append-only audit trail in insertion order.
func (d *DispatchOrder) History() []audit.Entry {
	return d.history
}

// setID validates and sets the dispatch order's unique identifier.
func (d *DispatchOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setDispatchNumber validates and sets the business identifier.
func (d *DispatchOrder) setDispatchNumber(dispatchNumber string) error {
	if dispatchNumber == "" {
		return errs.NewValueIsRequiredError("dispatchNumber")
	}
	d.dispatchNumber = dispatchNumber
	return nil
}

// setOrderID validates and sets the referenced order identifier.
func (d *DispatchOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setVehicle validates and sets the assigned vehicle.
func (d *DispatchOrder) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	d.vehicle = vehicle
	return nil
}

// setEstimatedDeliveryDate validates and sets the expected arrival time.
func (d *DispatchOrder) setEstimatedDeliveryDate(estimatedDeliveryDate time.Time) error {
	if estimatedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryDate")
	}
	d.estimatedDeliveryDate = estimatedDeliveryDate
	return nil
}

// setStatus validates and sets the status during restoration.
func (d *DispatchOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

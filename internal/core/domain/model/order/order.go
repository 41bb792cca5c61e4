package order

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed NewOrder/RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the transport order aggregate root: a shipment carried by one
// driver from an origin to a destination on a scheduled date.
//
// Invariants:
//   - the number is assigned once, at creation, and never changes
//   - the status starts at Pending and only moves through Advance
//   - Advance follows Status.Successor and fails on Delivered
//   - the order is deletable only while Pending
//   - weight, when present, is between 0 and MaxWeightKg
type Order struct {
	id                 kernel.UUID
	number             Number
	driverID           kernel.UUID
	originAddress      string
	destinationAddress string
	cargoDescription   string
	weightKg           *float64
	status             Status
	scheduledDate      time.Time
	notes              *string

	guard guard.ConstructorGuard
}

// NewOrder validates a draft and returns a pending order carrying number.
// The error, when not nil, is an *errs.ValidationError listing every failed
// field, or a value error for id and number.
//
// Example:
//
//	number, _ := order.NewNumber(42)
//	o, err := order.NewOrder(kernel.NewUUID(), number, order.Draft{
//	    DriverID:           driverID.String(),
//	    OriginAddress:      "Rua A, 100 - São Paulo",
//	    DestinationAddress: "Av. B, 200 - Campinas",
//	    CargoDescription:   "Eletrônicos",
//	    ScheduledDate:      "2026-03-10",
//	})
func NewOrder(id kernel.UUID, number Number, draft Draft) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number.IsZero() {
		return nil, errs.NewValueIsRequiredError("order_number")
	}

	a, verr := resolveDraft(draft)
	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		number:             number,
		driverID:           a.driverID,
		originAddress:      a.originAddress,
		destinationAddress: a.destinationAddress,
		cargoDescription:   a.cargoDescription,
		weightKg:           a.weightKg,
		status:             Pending,
		scheduledDate:      a.scheduledDate,
		notes:              a.notes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	driverID kernel.UUID,
	originAddress, destinationAddress, cargoDescription string,
	weightKg *float64,
	status Status,
	scheduledDate time.Time,
	notes *string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), driverID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if number.IsZero() {
		return nil, errs.NewValueIsRequiredError("order_number")
	}

	return &Order{
		id:                 id,
		number:             number,
		driverID:           driverID,
		originAddress:      originAddress,
		destinationAddress: destinationAddress,
		cargoDescription:   cargoDescription,
		weightKg:           weightKg,
		status:             status,
		scheduledDate:      scheduledDate,
		notes:              notes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) DriverID() kernel.UUID {
	return o.driverID
}

func (o *Order) OriginAddress() string {
	return o.originAddress
}

func (o *Order) DestinationAddress() string {
	return o.destinationAddress
}

func (o *Order) CargoDescription() string {
	return o.cargoDescription
}

// WeightKg returns nil when the weight is unknown.
func (o *Order) WeightKg() *float64 {
	if o.weightKg == nil {
		return nil
	}
	w := *o.weightKg
	return &w
}

func (o *Order) Status() Status {
	return o.status
}

// ScheduledDate is a calendar date at UTC midnight.
func (o *Order) ScheduledDate() time.Time {
	return o.scheduledDate
}

func (o *Order) Notes() *string {
	if o.notes == nil {
		return nil
	}
	n := *o.notes
	return &n
}

// Apply updates the supplied attributes, all or nothing. It never touches
// the status or the number.
func (o *Order) Apply(p Patch) error {
	a, verr := resolvePatch(p)
	if err := verr.ErrorOrNil(); err != nil {
		return err
	}

	if p.DriverID != nil {
		o.driverID = a.driverID
	}
	if p.OriginAddress != nil {
		o.originAddress = a.originAddress
	}
	if p.DestinationAddress != nil {
		o.destinationAddress = a.destinationAddress
	}
	if p.CargoDescription != nil {
		o.cargoDescription = a.cargoDescription
	}
	if p.WeightKg.IsPresent() {
		o.weightKg = a.weightKg
	}
	if p.ScheduledDate != nil {
		o.scheduledDate = a.scheduledDate
	}
	if p.Notes.IsPresent() {
		o.notes = a.notes
	}
	return nil
}

// Advance moves the order to the next status. On Delivered it returns an
// *errs.InvalidTransitionError and leaves the order unchanged.
func (o *Order) Advance() error {
	next, ok := o.status.Successor()
	if !ok {
		return errs.NewInvalidTransitionError("order", o.status.String())
	}
	o.status = next
	return nil
}

// EnsureDeletable returns an *errs.InvalidStateError unless the order is
// still Pending.
func (o *Order) EnsureDeletable() error {
	if o.status != Pending {
		return errs.NewInvalidStateError("order", "delete", o.status.String())
	}
	return nil
}

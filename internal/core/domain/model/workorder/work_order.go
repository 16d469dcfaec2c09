package workorder

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
// created through the NewWorkOrder factory method.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// WorkOrder is the aggregate root for a planned production run of one product.
// It owns the append-only history of WorkResult records and is the only place
// where work order status transitions happen.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier and product reference
//   - Quantity must be positive
//   - Status transitions are derived from the completed process count
//   - Completed and Rejected are terminal
type WorkOrder struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	status    Status

	startTime  *time.Time
	finishTime *time.Time

	plannedStartDate *time.Time
	plannedEndDate   *time.Time

	isConstructed bool
}

// NewWorkOrder creates a work order in Planned status with no recorded
// completions. Planned dates are optional.
func NewWorkOrder(id, productID kernel.UUID, quantity int, plannedStartDate, plannedEndDate *time.Time) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		status:           Planned,
		plannedStartDate: plannedStartDate,
		plannedEndDate:   plannedEndDate,
		isConstructed:    true,
	}

	if err := errors.Join(
		workOrder.setID(id),
		workOrder.setProductID(productID),
		workOrder.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return workOrder, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence.
func RestoreWorkOrder(
	id, productID kernel.UUID,
	quantity int,
	status Status,
	startTime, finishTime, plannedStartDate, plannedEndDate *time.Time,
) (*WorkOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	workOrder, err := NewWorkOrder(id, productID, quantity, plannedStartDate, plannedEndDate)
	if err != nil {
		return nil, err
	}

	workOrder.status = status
	workOrder.startTime = startTime
	workOrder.finishTime = finishTime
	return workOrder, nil
}

// Validate ensures the WorkOrder instance was properly constructed through NewWorkOrder.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// ProductID returns the identifier of the product being produced.
func (w *WorkOrder) ProductID() kernel.UUID {
	return w.productID
}

// Quantity returns the requested production quantity.
func (w *WorkOrder) Quantity() int {
	return w.quantity
}

// Status returns the current status of the work order.
func (w *WorkOrder) Status() Status {
	return w.status
}

// StartTime returns when the first process completion was recorded, nil if none.
func (w *WorkOrder) StartTime() *time.Time {
	return w.startTime
}

// FinishTime returns when the final process completion was recorded, nil until then.
func (w *WorkOrder) FinishTime() *time.Time {
	return w.finishTime
}

// PlannedStartDate returns the planned start date, nil if not set.
func (w *WorkOrder) PlannedStartDate() *time.Time {
	return w.plannedStartDate
}

// PlannedEndDate returns the planned end date, nil if not set.
func (w *WorkOrder) PlannedEndDate() *time.Time {
	return w.plannedEndDate
}

// RecordProgress advances the status after one more routing step has been
// completed. completedCount is the count including the step just recorded.
// The start time is stamped on the first completion and the finish time when
// the routing is exhausted. Terminal work orders reject further progress.
func (w *WorkOrder) RecordProgress(completedCount, totalProcesses int, now time.Time) error {
	if err := w.status.ValidateCompleteProcess(); err != nil {
		return err
	}

	newStatus, err := StatusForProgress(completedCount, totalProcesses)
	if err != nil {
		return err
	}

	if w.startTime == nil {
		w.startTime = &now
	}
	if newStatus == Completed && w.finishTime == nil {
		w.finishTime = &now
	}

	w.status = newStatus
	return nil
}

// Reject moves the work order to the terminal Rejected status after a quality
// gate failure. Rejecting an already terminal work order is an error.
func (w *WorkOrder) Reject() error {
	if w.status.IsTerminal() {
		return errs.NewInvalidStateError("work order", w.status.String())
	}
	w.status = Rejected
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	w.productID = productID
	return nil
}

func (w *WorkOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("quantity is not greater than 0"))
	}
	w.quantity = quantity
	return nil
}

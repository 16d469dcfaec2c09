package workorder

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrWorkResultIsNotConstructed is returned when a WorkResult instance was not
// created through the NewWorkResult factory method.
var ErrWorkResultIsNotConstructed = errors.New("WorkResult must be created via NewWorkResult constructor")

// WorkResult is the immutable record of one completed routing step for one
// work order. Results are append-only; the ordered sequence of results for a
// work order determines how many routing steps have been completed.
type WorkResult struct {
	id          kernel.UUID
	workOrderID kernel.UUID
	processID   kernel.UUID
	goodQty     int
	badQty      int
	recordedAt  time.Time

	isConstructed bool
}

// NewWorkResult creates a work result stamped with the given time.
// Quantities must be non-negative.
func NewWorkResult(id, workOrderID, processID kernel.UUID, goodQty, badQty int, recordedAt time.Time) (*WorkResult, error) {
	result := &WorkResult{
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		result.setID(id),
		result.setWorkOrderID(workOrderID),
		result.setProcessID(processID),
		result.setQuantities(goodQty, badQty),
	); err != nil {
		return nil, err
	}

	return result, nil
}

// RestoreWorkResult reconstructs a WorkResult from persistence.
func RestoreWorkResult(id, workOrderID, processID kernel.UUID, goodQty, badQty int, recordedAt time.Time) (*WorkResult, error) {
	return NewWorkResult(id, workOrderID, processID, goodQty, badQty, recordedAt)
}

// Validate ensures the WorkResult instance was properly constructed through NewWorkResult.
func (r *WorkResult) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrWorkResultIsNotConstructed
	}
	return nil
}

// ID returns the work result's unique identifier.
func (r *WorkResult) ID() kernel.UUID {
	return r.id
}

// WorkOrderID returns the owning work order's identifier.
func (r *WorkResult) WorkOrderID() kernel.UUID {
	return r.workOrderID
}

// ProcessID returns the completed routing step's identifier.
func (r *WorkResult) ProcessID() kernel.UUID {
	return r.processID
}

// GoodQty returns the number of good units produced in this step.
func (r *WorkResult) GoodQty() int {
	return r.goodQty
}

// BadQty returns the number of defective units produced in this step.
func (r *WorkResult) BadQty() int {
	return r.badQty
}

// RecordedAt returns when the step completion was recorded.
func (r *WorkResult) RecordedAt() time.Time {
	return r.recordedAt
}

func (r *WorkResult) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *WorkResult) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	r.workOrderID = workOrderID
	return nil
}

func (r *WorkResult) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}
	r.processID = processID
	return nil
}

func (r *WorkResult) setQuantities(goodQty, badQty int) error {
	if goodQty < 0 {
		return errs.NewValueIsInvalidError("good quantity")
	}
	if badQty < 0 {
		return errs.NewValueIsInvalidError("bad quantity")
	}
	r.goodQty = goodQty
	r.badQty = badQty
	return nil
}

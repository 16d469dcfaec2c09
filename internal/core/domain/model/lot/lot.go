package lot

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrLotIsNotConstructed is returned when a Lot instance was not created
// through the NewLot factory method.
var ErrLotIsNotConstructed = errors.New("Lot must be created via NewLot constructor")

// Lot is the aggregate root for a physical batch of units. A lot carries a
// unique daily-sequential lot number and an append-only history of process
// applications. Lot tracking is deliberately free-form: history entries may
// reference processes in any order, independent of work order sequencing.
type Lot struct {
	id          kernel.UUID
	lotNumber   string
	productID   kernel.UUID
	workOrderID *kernel.UUID
	quantity    int
	status      Status
	remarks     string

	createdAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewLot creates a lot in Created status. workOrderID is optional; lots can
// exist outside any work order. The lot number must already be generated via
// NextNumber.
func NewLot(
	id kernel.UUID,
	lotNumber string,
	productID kernel.UUID,
	workOrderID *kernel.UUID,
	quantity int,
	remarks string,
	createdAt time.Time,
) (*Lot, error) {
	l := &Lot{
		status:        Created,
		remarks:       remarks,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setLotNumber(lotNumber),
		l.setProductID(productID),
		l.setWorkOrderID(workOrderID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLot reconstructs a Lot from persistence.
func RestoreLot(
	id kernel.UUID,
	lotNumber string,
	productID kernel.UUID,
	workOrderID *kernel.UUID,
	quantity int,
	status Status,
	remarks string,
	createdAt time.Time,
	startedAt, completedAt *time.Time,
) (*Lot, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	l, err := NewLot(id, lotNumber, productID, workOrderID, quantity, remarks, createdAt)
	if err != nil {
		return nil, err
	}

	l.status = status
	l.startedAt = startedAt
	l.completedAt = completedAt
	return l, nil
}

// Validate ensures the Lot instance was properly constructed through NewLot.
func (l *Lot) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLotIsNotConstructed
	}
	return nil
}

// IsEqual compares two lots by their unique identifiers.
func (l *Lot) IsEqual(other *Lot) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the lot's unique identifier.
func (l *Lot) ID() kernel.UUID {
	return l.id
}

// LotNumber returns the unique LOT-YYYYMMDD-NNNN number.
func (l *Lot) LotNumber() string {
	return l.lotNumber
}

// ProductID returns the identifier of the product the lot consists of.
func (l *Lot) ProductID() kernel.UUID {
	return l.productID
}

// WorkOrderID returns the owning work order's identifier, nil when the lot
// is not tied to a work order.
func (l *Lot) WorkOrderID() *kernel.UUID {
	return l.workOrderID
}

// Quantity returns the number of units in the lot.
func (l *Lot) Quantity() int {
	return l.quantity
}

// Status returns the current status of the lot.
func (l *Lot) Status() Status {
	return l.status
}

// Remarks returns the lot's free-text remarks.
func (l *Lot) Remarks() string {
	return l.remarks
}

// CreatedAt returns when the lot was created.
func (l *Lot) CreatedAt() time.Time {
	return l.createdAt
}

// StartedAt returns when production on the lot started, nil if not started.
func (l *Lot) StartedAt() *time.Time {
	return l.startedAt
}

// CompletedAt returns when production on the lot completed, nil until then.
func (l *Lot) CompletedAt() *time.Time {
	return l.completedAt
}

// SetStatus applies an externally driven status change. Transitioning to
// InProgress stamps the started-at time and transitioning to Completed stamps
// the completed-at time, each only if not already set.
func (l *Lot) SetStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	switch status {
	case InProgress:
		if l.startedAt == nil {
			l.startedAt = &now
		}
	case Completed:
		if l.completedAt == nil {
			l.completedAt = &now
		}
	}

	l.status = status
	return nil
}

// HistoryAppended applies the one automatic transition rule: a lot still in
// Created moves to InProgress when its first history entry is recorded.
func (l *Lot) HistoryAppended(now time.Time) {
	if l.status == Created {
		l.status = InProgress
		if l.startedAt == nil {
			l.startedAt = &now
		}
	}
}

func (l *Lot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lot) setLotNumber(lotNumber string) error {
	if lotNumber == "" {
		return errs.NewValueIsRequiredError("lot number")
	}
	l.lotNumber = lotNumber
	return nil
}

func (l *Lot) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Lot) setWorkOrderID(workOrderID *kernel.UUID) error {
	if workOrderID == nil {
		return nil
	}
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	l.workOrderID = workOrderID
	return nil
}

func (l *Lot) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("quantity is not greater than 0"))
	}
	l.quantity = quantity
	return nil
}

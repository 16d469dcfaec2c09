package inspection

import (
	"errors"
	"fmt"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrInspectionIsNotConstructed is returned when an Inspection instance was
// not created through the NewInspection factory method.
var ErrInspectionIsNotConstructed = errors.New("Inspection must be created via NewInspection constructor")

// numberPrefix is the literal prefix of every inspection number.
const numberPrefix = "INS"

// NextNumber builds the inspection number for the next inspection created on
// the given day: INS-YYYYMMDD-NNNN, the same daily-reset scheme as lot
// numbers. Callers must serialize generation per day.
func NextNumber(now time.Time, createdToday int64) string {
	return fmt.Sprintf("%s-%s-%04d", numberPrefix, now.Format("20060102"), createdToday+1)
}

// Inspection is the aggregate root for one sampling-based quality inspection
// of a lot. It owns its items and is finalized exactly once, at which point
// the overall result and passed/failed counts become immutable.
type Inspection struct {
	id               kernel.UUID
	inspectionNumber string
	lotID            kernel.UUID
	processID        *kernel.UUID
	inspectionType   Type
	status           Status
	result           *Result
	sampleSize       int
	passedCount      int
	failedCount      int
	inspector        string
	remarks          string
	items            []Item

	inspectionDate *time.Time
	createdAt      time.Time

	isConstructed bool
}

// NewInspection creates an inspection in Pending status with no items.
// processID is optional; incoming and outgoing inspections are not tied to a
// routing step.
func NewInspection(
	id kernel.UUID,
	inspectionNumber string,
	lotID kernel.UUID,
	processID *kernel.UUID,
	inspectionType Type,
	sampleSize int,
	inspector, remarks string,
	createdAt time.Time,
) (*Inspection, error) {
	insp := &Inspection{
		status:        Pending,
		inspector:     inspector,
		remarks:       remarks,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		insp.setID(id),
		insp.setInspectionNumber(inspectionNumber),
		insp.setLotID(lotID),
		insp.setProcessID(processID),
		insp.setType(inspectionType),
		insp.setSampleSize(sampleSize),
	); err != nil {
		return nil, err
	}

	return insp, nil
}

// RestoreInspection reconstructs an Inspection from persistence.
func RestoreInspection(
	id kernel.UUID,
	inspectionNumber string,
	lotID kernel.UUID,
	processID *kernel.UUID,
	inspectionType Type,
	status Status,
	result *Result,
	sampleSize, passedCount, failedCount int,
	inspector, remarks string,
	items []Item,
	inspectionDate *time.Time,
	createdAt time.Time,
) (*Inspection, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if result != nil {
		if err := result.Validate(); err != nil {
			return nil, err
		}
	}

	insp, err := NewInspection(id, inspectionNumber, lotID, processID, inspectionType,
		sampleSize, inspector, remarks, createdAt)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	insp.status = status
	insp.result = result
	insp.passedCount = passedCount
	insp.failedCount = failedCount
	insp.items = items
	insp.inspectionDate = inspectionDate
	return insp, nil
}

// Validate ensures the Inspection instance was properly constructed through NewInspection.
func (i *Inspection) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInspectionIsNotConstructed
	}
	return nil
}

// IsEqual compares two inspections by their unique identifiers.
func (i *Inspection) IsEqual(other *Inspection) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the inspection's unique identifier.
func (i *Inspection) ID() kernel.UUID {
	return i.id
}

// InspectionNumber returns the unique INS-YYYYMMDD-NNNN number.
func (i *Inspection) InspectionNumber() string {
	return i.inspectionNumber
}

// LotID returns the inspected lot's identifier.
func (i *Inspection) LotID() kernel.UUID {
	return i.lotID
}

// ProcessID returns the related routing step's identifier, nil when the
// inspection is not tied to a process.
func (i *Inspection) ProcessID() *kernel.UUID {
	return i.processID
}

// Type returns the inspection type.
func (i *Inspection) Type() Type {
	return i.inspectionType
}

// Status returns the current status of the inspection.
func (i *Inspection) Status() Status {
	return i.status
}

// Result returns the overall result, nil until the inspection is completed.
func (i *Inspection) Result() *Result {
	return i.result
}

// SampleSize returns the number of sampled units.
func (i *Inspection) SampleSize() int {
	return i.sampleSize
}

// PassedCount returns the number of items judged PASS, computed at completion.
func (i *Inspection) PassedCount() int {
	return i.passedCount
}

// FailedCount returns the number of items judged FAIL, computed at completion.
func (i *Inspection) FailedCount() int {
	return i.failedCount
}

// Inspector returns the inspector's name.
func (i *Inspection) Inspector() string {
	return i.inspector
}

// Remarks returns the inspection's free-text remarks.
func (i *Inspection) Remarks() string {
	return i.remarks
}

// Items returns the inspection's items. The returned slice is a copy.
func (i *Inspection) Items() []Item {
	items := make([]Item, len(i.items))
	copy(items, i.items)
	return items
}

// InspectionDate returns when the inspection was completed, nil until then.
func (i *Inspection) InspectionDate() *time.Time {
	return i.inspectionDate
}

// CreatedAt returns when the inspection was created.
func (i *Inspection) CreatedAt() time.Time {
	return i.createdAt
}

// AddItem attaches an item to a not-yet-completed inspection.
func (i *Inspection) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if i.status == StatusCompleted || i.status == Cancelled {
		return errs.NewInvalidStateError("inspection", i.status.String())
	}

	i.items = append(i.items, item)
	return nil
}

// Complete finalizes the inspection with the given overall result.
// The passed/failed counts are recomputed from the item results; items judged
// ConditionalPass count toward neither bucket. Completion is one-shot: a
// second call fails with an invalid state error.
func (i *Inspection) Complete(result Result, now time.Time) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if err := i.status.ValidateComplete(); err != nil {
		return err
	}

	passed, failed := 0, 0
	for _, item := range i.items {
		switch item.Result() {
		case Pass:
			passed++
		case Fail:
			failed++
		}
	}

	i.status = StatusCompleted
	i.result = &result
	i.passedCount = passed
	i.failedCount = failed
	i.inspectionDate = &now
	return nil
}

// Cancel abandons a not-yet-completed inspection.
func (i *Inspection) Cancel() error {
	if err := i.status.ValidateComplete(); err != nil {
		return err
	}
	i.status = Cancelled
	return nil
}

func (i *Inspection) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Inspection) setInspectionNumber(inspectionNumber string) error {
	if inspectionNumber == "" {
		return errs.NewValueIsRequiredError("inspection number")
	}
	i.inspectionNumber = inspectionNumber
	return nil
}

func (i *Inspection) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}
	i.lotID = lotID
	return nil
}

func (i *Inspection) setProcessID(processID *kernel.UUID) error {
	if processID == nil {
		return nil
	}
	if err := processID.Validate(); err != nil {
		return err
	}
	i.processID = processID
	return nil
}

func (i *Inspection) setType(inspectionType Type) error {
	if err := inspectionType.Validate(); err != nil {
		return err
	}
	i.inspectionType = inspectionType
	return nil
}

func (i *Inspection) setSampleSize(sampleSize int) error {
	if sampleSize < 0 {
		return errs.NewValueIsInvalidError("sample size")
	}
	i.sampleSize = sampleSize
	return nil
}

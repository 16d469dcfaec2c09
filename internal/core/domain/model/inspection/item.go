package inspection

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one measured check within an inspection, judged against a named
// standard. The standard's nominal value and tolerance are copied onto the
// item at creation so the record stays meaningful if the standard later
// changes. Items are immutable once created.
type Item struct {
	id            kernel.UUID
	inspectionID  kernel.UUID
	standardID    kernel.UUID
	measuredValue string
	standardValue string
	tolerance     string
	result        Result
	remarks       string

	isConstructed bool
}

// NewItem creates an inspection item bound to a standard. standardValue and
// tolerance are the values copied from the standard at creation time.
func NewItem(
	id, inspectionID, standardID kernel.UUID,
	measuredValue, standardValue, tolerance string,
	result Result,
	remarks string,
) (Item, error) {
	item := Item{
		measuredValue: measuredValue,
		standardValue: standardValue,
		tolerance:     tolerance,
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setInspectionID(inspectionID),
		item.setStandardID(standardID),
		item.setResult(result),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(
	id, inspectionID, standardID kernel.UUID,
	measuredValue, standardValue, tolerance string,
	result Result,
	remarks string,
) (Item, error) {
	return NewItem(id, inspectionID, standardID, measuredValue, standardValue, tolerance, result, remarks)
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// InspectionID returns the owning inspection's identifier.
func (i Item) InspectionID() kernel.UUID {
	return i.inspectionID
}

// StandardID returns the judged-against standard's identifier.
func (i Item) StandardID() kernel.UUID {
	return i.standardID
}

// MeasuredValue returns the recorded measurement.
func (i Item) MeasuredValue() string {
	return i.measuredValue
}

// StandardValue returns the nominal value copied from the standard.
func (i Item) StandardValue() string {
	return i.standardValue
}

// Tolerance returns the rendered tolerance band copied from the standard.
func (i Item) Tolerance() string {
	return i.tolerance
}

// Result returns the per-item PASS/FAIL/CONDITIONAL_PASS judgement.
func (i Item) Result() Result {
	return i.result
}

// Remarks returns the item's free-text remarks.
func (i Item) Remarks() string {
	return i.remarks
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setInspectionID(inspectionID kernel.UUID) error {
	if err := inspectionID.Validate(); err != nil {
		return err
	}
	i.inspectionID = inspectionID
	return nil
}

func (i *Item) setStandardID(standardID kernel.UUID) error {
	if err := standardID.Validate(); err != nil {
		return err
	}
	i.standardID = standardID
	return nil
}

func (i *Item) setResult(result Result) error {
	if err := result.Validate(); err != nil {
		return err
	}
	i.result = result
	return nil
}

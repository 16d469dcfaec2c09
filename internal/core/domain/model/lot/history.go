package lot

import (
	"errors"
	"fmt"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrHistoryIsNotConstructed is returned when a History instance was not
// created through the NewHistory factory method.
var ErrHistoryIsNotConstructed = errors.New("History must be created via NewHistory constructor")

// ProcessResult is the pass/fail outcome of one process application to a lot.
type ProcessResult int

const (
	// ProcessResultUnknown represents an invalid or undefined result.
	ProcessResultUnknown ProcessResult = iota

	// ProcessPass indicates the process step succeeded.
	ProcessPass

	// ProcessFail indicates the process step failed.
	ProcessFail
)

func getProcessResultStrings() map[ProcessResult]string {
	return map[ProcessResult]string{
		ProcessResultUnknown: "Unknown",
		ProcessPass:          "PASS",
		ProcessFail:          "FAIL",
	}
}

// ProcessResultFromString parses a wire result name, e.g. "PASS".
func ProcessResultFromString(s string) (ProcessResult, error) {
	switch s {
	case "PASS":
		return ProcessPass, nil
	case "FAIL":
		return ProcessFail, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("result", fmt.Errorf("%q is not a valid process result", s))
}

// Validate checks if the ProcessResult value is valid.
func (r ProcessResult) Validate() error {
	if r != ProcessPass && r != ProcessFail {
		return errs.NewValueIsInvalidErrorWithCause("result", fmt.Errorf("%d is not a valid process result", r))
	}
	return nil
}

// String returns the wire name of the result, "Unknown" for invalid values.
func (r ProcessResult) String() string {
	if str, ok := getProcessResultStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// History is the immutable record of one process applied to a lot: which
// process ran on which equipment, the input/output/defect quantities, the
// operator, and the outcome. Entries are append-only and never edited.
type History struct {
	id          kernel.UUID
	lotID       kernel.UUID
	processID   kernel.UUID
	equipmentID kernel.UUID

	inputQuantity  int
	outputQuantity int
	defectQuantity int
	result         ProcessResult
	operator       string
	remarks        string
	processedAt    time.Time

	isConstructed bool
}

// NewHistory creates a history entry stamped with the given processing time.
// Quantities must be non-negative.
func NewHistory(
	id, lotID, processID, equipmentID kernel.UUID,
	inputQuantity, outputQuantity, defectQuantity int,
	result ProcessResult,
	operator, remarks string,
	processedAt time.Time,
) (*History, error) {
	h := &History{
		operator:      operator,
		remarks:       remarks,
		processedAt:   processedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setLotID(lotID),
		h.setProcessID(processID),
		h.setEquipmentID(equipmentID),
		h.setQuantities(inputQuantity, outputQuantity, defectQuantity),
		h.setResult(result),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHistory reconstructs a History from persistence.
func RestoreHistory(
	id, lotID, processID, equipmentID kernel.UUID,
	inputQuantity, outputQuantity, defectQuantity int,
	result ProcessResult,
	operator, remarks string,
	processedAt time.Time,
) (*History, error) {
	return NewHistory(id, lotID, processID, equipmentID,
		inputQuantity, outputQuantity, defectQuantity, result, operator, remarks, processedAt)
}

// Validate ensures the History instance was properly constructed through NewHistory.
func (h *History) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryIsNotConstructed
	}
	return nil
}

// ID returns the history entry's unique identifier.
func (h *History) ID() kernel.UUID {
	return h.id
}

// LotID returns the owning lot's identifier.
func (h *History) LotID() kernel.UUID {
	return h.lotID
}

// ProcessID returns the applied process's identifier.
func (h *History) ProcessID() kernel.UUID {
	return h.processID
}

// EquipmentID returns the identifier of the equipment used.
func (h *History) EquipmentID() kernel.UUID {
	return h.equipmentID
}

// InputQuantity returns the number of units fed into the process.
func (h *History) InputQuantity() int {
	return h.inputQuantity
}

// OutputQuantity returns the number of good units produced.
func (h *History) OutputQuantity() int {
	return h.outputQuantity
}

// DefectQuantity returns the number of defective units produced.
func (h *History) DefectQuantity() int {
	return h.defectQuantity
}

// Result returns the pass/fail outcome of the step.
func (h *History) Result() ProcessResult {
	return h.result
}

// Operator returns the name of the operator who ran the step.
func (h *History) Operator() string {
	return h.operator
}

// Remarks returns the entry's free-text remarks.
func (h *History) Remarks() string {
	return h.remarks
}

// ProcessedAt returns when the step was recorded.
func (h *History) ProcessedAt() time.Time {
	return h.processedAt
}

func (h *History) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *History) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}
	h.lotID = lotID
	return nil
}

func (h *History) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}
	h.processID = processID
	return nil
}

func (h *History) setEquipmentID(equipmentID kernel.UUID) error {
	if err := equipmentID.Validate(); err != nil {
		return err
	}
	h.equipmentID = equipmentID
	return nil
}

func (h *History) setQuantities(inputQuantity, outputQuantity, defectQuantity int) error {
	if inputQuantity < 0 {
		return errs.NewValueIsInvalidError("input quantity")
	}
	if outputQuantity < 0 {
		return errs.NewValueIsInvalidError("output quantity")
	}
	if defectQuantity < 0 {
		return errs.NewValueIsInvalidError("defect quantity")
	}
	h.inputQuantity = inputQuantity
	h.outputQuantity = outputQuantity
	h.defectQuantity = defectQuantity
	return nil
}

func (h *History) setResult(result ProcessResult) error {
	if err := result.Validate(); err != nil {
		return err
	}
	h.result = result
	return nil
}

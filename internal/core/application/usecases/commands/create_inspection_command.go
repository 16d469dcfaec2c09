package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateInspectionCommandIsNotConstructed = errors.New(
		"CreateInspectionCommand must be created via NewCreateInspectionCommand constructor",
	)
	ErrSampleSizeIsInvalid = errors.New("sample size must be greater than 0")
)

// ItemInput describes one measurement of a new inspection against an
// inspection standard.
type ItemInput struct {
	StandardID    kernel.UUID
	MeasuredValue string
	Result        inspection.Result
	Remarks       string
}

// CreateInspectionCommand represents a request to open a quality inspection
// for a lot. The inspection number is assigned during handling.
type CreateInspectionCommand struct { //nolint:recvcheck //using for validation
	inspectionID   kernel.UUID
	lotID          kernel.UUID
	processID      *kernel.UUID
	inspectionType inspection.Type
	sampleSize     int
	inspector      string
	remarks        string
	items          []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateInspectionCommand creates a command to open a quality inspection.
// Validates identifiers, the inspection type and the sample size. Item
// contents are validated against standards during handling.
func NewCreateInspectionCommand(
	inspectionID, lotID kernel.UUID,
	processID *kernel.UUID,
	inspectionType inspection.Type,
	sampleSize int,
	inspector, remarks string,
	items []ItemInput,
) (CreateInspectionCommand, error) {
	command := CreateInspectionCommand{
		inspector: inspector,
		remarks:   remarks,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInspectionID(inspectionID),
		command.setLotID(lotID),
		command.setProcessID(processID),
		command.setType(inspectionType),
		command.setSampleSize(sampleSize),
	); err != nil {
		return CreateInspectionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCreateInspectionCommandIsNotConstructed)
}

// InspectionID returns the unique identifier for the inspection.
func (c CreateInspectionCommand) InspectionID() kernel.UUID {
	return c.inspectionID
}

// LotID returns the identifier of the inspected lot.
func (c CreateInspectionCommand) LotID() kernel.UUID {
	return c.lotID
}

// ProcessID returns the optional identifier of the routing step the
// inspection relates to.
func (c CreateInspectionCommand) ProcessID() *kernel.UUID {
	return c.processID
}

// Type returns the inspection type.
func (c CreateInspectionCommand) Type() inspection.Type {
	return c.inspectionType
}

// SampleSize returns the number of units sampled.
func (c CreateInspectionCommand) SampleSize() int {
	return c.sampleSize
}

// Inspector returns the name of the inspector.
func (c CreateInspectionCommand) Inspector() string {
	return c.inspector
}

// Remarks returns the optional free-form remarks.
func (c CreateInspectionCommand) Remarks() string {
	return c.remarks
}

// Items returns the measurement inputs to record with the inspection.
func (c CreateInspectionCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateInspectionCommand) setInspectionID(inspectionID kernel.UUID) error {
	if err := inspectionID.Validate(); err != nil {
		return err
	}

	c.inspectionID = inspectionID
	return nil
}

func (c *CreateInspectionCommand) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}

	c.lotID = lotID
	return nil
}

func (c *CreateInspectionCommand) setProcessID(processID *kernel.UUID) error {
	if processID != nil {
		if err := processID.Validate(); err != nil {
			return err
		}
	}

	c.processID = processID
	return nil
}

func (c *CreateInspectionCommand) setType(inspectionType inspection.Type) error {
	if err := inspectionType.Validate(); err != nil {
		return err
	}

	c.inspectionType = inspectionType
	return nil
}

func (c *CreateInspectionCommand) setSampleSize(sampleSize int) error {
	if sampleSize <= 0 {
		return ErrSampleSizeIsInvalid
	}

	c.sampleSize = sampleSize
	return nil
}

package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/guard"
)

var (
	ErrAddLotHistoryCommandIsNotConstructed = errors.New(
		"AddLotHistoryCommand must be created via NewAddLotHistoryCommand constructor",
	)
	ErrHistoryQuantityIsInvalid = errors.New("history quantities must not be negative")
)

// AddLotHistoryCommand represents a request to record that a lot passed
// through a process on a piece of equipment, with the measured quantities
// and the pass/fail outcome.
type AddLotHistoryCommand struct { //nolint:recvcheck //using for validation
	lotID          kernel.UUID
	processID      kernel.UUID
	equipmentID    kernel.UUID
	inputQuantity  int
	outputQuantity int
	defectQuantity int
	result         lot.ProcessResult
	operator       string
	remarks        string

	guard guard.ConstructorGuard
}

// NewAddLotHistoryCommand creates a command to record a lot history entry.
// Validates that all identifiers are valid, quantities are not negative and
// the result is a known outcome.
func NewAddLotHistoryCommand(
	lotID, processID, equipmentID kernel.UUID,
	inputQuantity, outputQuantity, defectQuantity int,
	result lot.ProcessResult,
	operator, remarks string,
) (AddLotHistoryCommand, error) {
	command := AddLotHistoryCommand{
		operator: operator,
		remarks:  remarks,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLotID(lotID),
		command.setProcessID(processID),
		command.setEquipmentID(equipmentID),
		command.setQuantities(inputQuantity, outputQuantity, defectQuantity),
		command.setResult(result),
	); err != nil {
		return AddLotHistoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLotHistoryCommand) Validate() error {
	return c.guard.Validate(ErrAddLotHistoryCommandIsNotConstructed)
}

// LotID returns the identifier of the tracked lot.
func (c AddLotHistoryCommand) LotID() kernel.UUID {
	return c.lotID
}

// ProcessID returns the identifier of the routing step the lot went through.
func (c AddLotHistoryCommand) ProcessID() kernel.UUID {
	return c.processID
}

// EquipmentID returns the identifier of the equipment used.
func (c AddLotHistoryCommand) EquipmentID() kernel.UUID {
	return c.equipmentID
}

// InputQuantity returns the quantity entering the process.
func (c AddLotHistoryCommand) InputQuantity() int {
	return c.inputQuantity
}

// OutputQuantity returns the good quantity leaving the process.
func (c AddLotHistoryCommand) OutputQuantity() int {
	return c.outputQuantity
}

// DefectQuantity returns the defective quantity found in the process.
func (c AddLotHistoryCommand) DefectQuantity() int {
	return c.defectQuantity
}

// Result returns the pass/fail outcome of the process run.
func (c AddLotHistoryCommand) Result() lot.ProcessResult {
	return c.result
}

// Operator returns the name of the operator who ran the process.
func (c AddLotHistoryCommand) Operator() string {
	return c.operator
}

// Remarks returns the optional free-form remarks.
func (c AddLotHistoryCommand) Remarks() string {
	return c.remarks
}

func (c *AddLotHistoryCommand) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}

	c.lotID = lotID
	return nil
}

func (c *AddLotHistoryCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *AddLotHistoryCommand) setEquipmentID(equipmentID kernel.UUID) error {
	if err := equipmentID.Validate(); err != nil {
		return err
	}

	c.equipmentID = equipmentID
	return nil
}

func (c *AddLotHistoryCommand) setQuantities(inputQuantity, outputQuantity, defectQuantity int) error {
	if inputQuantity < 0 || outputQuantity < 0 || defectQuantity < 0 {
		return ErrHistoryQuantityIsInvalid
	}

	c.inputQuantity = inputQuantity
	c.outputQuantity = outputQuantity
	c.defectQuantity = defectQuantity
	return nil
}

func (c *AddLotHistoryCommand) setResult(result lot.ProcessResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	c.result = result
	return nil
}

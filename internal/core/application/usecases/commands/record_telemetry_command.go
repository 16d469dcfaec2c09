package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrRecordTelemetryCommandIsNotConstructed = errors.New(
	"RecordTelemetryCommand must be created via NewRecordTelemetryCommand constructor",
)

// RecordTelemetryCommand represents a telemetry sample reported by a piece
// of equipment: its current status, temperature and production speed.
type RecordTelemetryCommand struct { //nolint:recvcheck //using for validation
	equipmentID     kernel.UUID
	status          equipment.Status
	temperature     float64
	productionSpeed int

	guard guard.ConstructorGuard
}

// NewRecordTelemetryCommand creates a command to record a telemetry sample.
// Validates that the equipment identifier and status are valid.
func NewRecordTelemetryCommand(
	equipmentID kernel.UUID,
	status equipment.Status,
	temperature float64,
	productionSpeed int,
) (RecordTelemetryCommand, error) {
	command := RecordTelemetryCommand{
		temperature:     temperature,
		productionSpeed: productionSpeed,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEquipmentID(equipmentID),
		command.setStatus(status),
	); err != nil {
		return RecordTelemetryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTelemetryCommand) Validate() error {
	return c.guard.Validate(ErrRecordTelemetryCommandIsNotConstructed)
}

// EquipmentID returns the identifier of the reporting equipment.
func (c RecordTelemetryCommand) EquipmentID() kernel.UUID {
	return c.equipmentID
}

// Status returns the reported equipment status.
func (c RecordTelemetryCommand) Status() equipment.Status {
	return c.status
}

// Temperature returns the reported temperature.
func (c RecordTelemetryCommand) Temperature() float64 {
	return c.temperature
}

// ProductionSpeed returns the reported production speed in units per hour.
func (c RecordTelemetryCommand) ProductionSpeed() int {
	return c.productionSpeed
}

func (c *RecordTelemetryCommand) setEquipmentID(equipmentID kernel.UUID) error {
	if err := equipmentID.Validate(); err != nil {
		return err
	}

	c.equipmentID = equipmentID
	return nil
}

func (c *RecordTelemetryCommand) setStatus(status equipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

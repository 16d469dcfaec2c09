package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateEquipmentCommandIsNotConstructed = errors.New(
		"CreateEquipmentCommand must be created via NewCreateEquipmentCommand constructor",
	)
	ErrEquipmentNameIsRequired = errors.New("equipment name is required")
)

// CreateEquipmentCommand represents a request to register a piece of
// production equipment. Equipment starts in IDLE status.
type CreateEquipmentCommand struct { //nolint:recvcheck //using for validation
	equipmentID   kernel.UUID
	name          string
	location      string
	equipmentType string
	sequence      int

	guard guard.ConstructorGuard
}

// NewCreateEquipmentCommand creates a command to register equipment.
// Validates that the identifier is valid and the name is not empty.
func NewCreateEquipmentCommand(
	equipmentID kernel.UUID,
	name, location, equipmentType string,
	sequence int,
) (CreateEquipmentCommand, error) {
	command := CreateEquipmentCommand{
		location:      location,
		equipmentType: equipmentType,
		sequence:      sequence,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEquipmentID(equipmentID),
		command.setName(name),
	); err != nil {
		return CreateEquipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateEquipmentCommandIsNotConstructed)
}

// EquipmentID returns the unique identifier for the equipment.
func (c CreateEquipmentCommand) EquipmentID() kernel.UUID {
	return c.equipmentID
}

// Name returns the display name of the equipment.
func (c CreateEquipmentCommand) Name() string {
	return c.name
}

// Location returns the plant location of the equipment.
func (c CreateEquipmentCommand) Location() string {
	return c.location
}

// EquipmentType returns the free-form equipment type label.
func (c CreateEquipmentCommand) EquipmentType() string {
	return c.equipmentType
}

// Sequence returns the display ordering of the equipment.
func (c CreateEquipmentCommand) Sequence() int {
	return c.sequence
}

func (c *CreateEquipmentCommand) setEquipmentID(equipmentID kernel.UUID) error {
	if err := equipmentID.Validate(); err != nil {
		return err
	}

	c.equipmentID = equipmentID
	return nil
}

func (c *CreateEquipmentCommand) setName(name string) error {
	if name == "" {
		return ErrEquipmentNameIsRequired
	}

	c.name = name
	return nil
}

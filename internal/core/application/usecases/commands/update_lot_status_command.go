package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/guard"
)

var ErrUpdateLotStatusCommandIsNotConstructed = errors.New(
	"UpdateLotStatusCommand must be created via NewUpdateLotStatusCommand constructor",
)

// UpdateLotStatusCommand represents a request to move a lot to a new
// lifecycle status.
type UpdateLotStatusCommand struct { //nolint:recvcheck //using for validation
	lotID  kernel.UUID
	status lot.Status

	guard guard.ConstructorGuard
}

// NewUpdateLotStatusCommand creates a command to change a lot's status.
// Validates that the lot identifier and the target status are valid.
func NewUpdateLotStatusCommand(lotID kernel.UUID, status lot.Status) (UpdateLotStatusCommand, error) {
	command := UpdateLotStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLotID(lotID),
		command.setStatus(status),
	); err != nil {
		return UpdateLotStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLotStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLotStatusCommandIsNotConstructed)
}

// LotID returns the identifier of the lot to update.
func (c UpdateLotStatusCommand) LotID() kernel.UUID {
	return c.lotID
}

// Status returns the target lifecycle status.
func (c UpdateLotStatusCommand) Status() lot.Status {
	return c.status
}

func (c *UpdateLotStatusCommand) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}

	c.lotID = lotID
	return nil
}

func (c *UpdateLotStatusCommand) setStatus(status lot.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

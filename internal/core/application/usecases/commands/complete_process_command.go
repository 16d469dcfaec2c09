package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCompleteProcessCommandIsNotConstructed = errors.New(
		"CompleteProcessCommand must be created via NewCompleteProcessCommand constructor",
	)
	ErrGoodQtyIsInvalid = errors.New("good quantity must not be negative")
	ErrBadQtyIsInvalid  = errors.New("bad quantity must not be negative")
)

// CompleteProcessCommand represents a request to report completion of one
// routing step of a work order, with the inspected good and bad quantities.
//
// Example:
//
//	cmd, err := NewCompleteProcessCommand(workOrderID, processID, 95, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid completion data: %w", err)
//	}
//
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrDefectRateExceeded) {
//	    // work order is now REJECTED, nothing was recorded
//	}
type CompleteProcessCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	processID   kernel.UUID
	goodQty     int
	badQty      int

	guard guard.ConstructorGuard
}

// NewCompleteProcessCommand creates a command to complete a routing step.
// Validates that both identifiers are valid and quantities are not negative.
func NewCompleteProcessCommand(workOrderID, processID kernel.UUID, goodQty, badQty int) (CompleteProcessCommand, error) {
	command := CompleteProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setProcessID(processID),
		command.setGoodQty(goodQty),
		command.setBadQty(badQty),
	); err != nil {
		return CompleteProcessCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessCommandIsNotConstructed)
}

// WorkOrderID returns the identifier of the work order being progressed.
func (c CompleteProcessCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ProcessID returns the identifier of the routing step being completed.
func (c CompleteProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

// GoodQty returns the quantity that passed inspection.
func (c CompleteProcessCommand) GoodQty() int {
	return c.goodQty
}

// BadQty returns the quantity that failed inspection.
func (c CompleteProcessCommand) BadQty() int {
	return c.badQty
}

func (c *CompleteProcessCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CompleteProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *CompleteProcessCommand) setGoodQty(goodQty int) error {
	if goodQty < 0 {
		return ErrGoodQtyIsInvalid
	}

	c.goodQty = goodQty
	return nil
}

func (c *CompleteProcessCommand) setBadQty(badQty int) error {
	if badQty < 0 {
		return ErrBadQtyIsInvalid
	}

	c.badQty = badQty
	return nil
}

package commands

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateWorkOrderCommand represents a request to plan a new work order for a
// product. The order starts in PLANNED status.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID      kernel.UUID
	productID        kernel.UUID
	quantity         int
	plannedStartDate *time.Time
	plannedEndDate   *time.Time

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to plan a new work order.
// Validates that both identifiers are valid and quantity is positive.
// Planned dates are optional.
func NewCreateWorkOrderCommand(
	workOrderID, productID kernel.UUID,
	quantity int,
	plannedStartDate, plannedEndDate *time.Time,
) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		plannedStartDate: plannedStartDate,
		plannedEndDate:   plannedEndDate,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier for the work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ProductID returns the identifier of the product to produce.
func (c CreateWorkOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the ordered production quantity.
func (c CreateWorkOrderCommand) Quantity() int {
	return c.quantity
}

// PlannedStartDate returns the optional planned start date.
func (c CreateWorkOrderCommand) PlannedStartDate() *time.Time {
	return c.plannedStartDate
}

// PlannedEndDate returns the optional planned end date.
func (c CreateWorkOrderCommand) PlannedEndDate() *time.Time {
	return c.plannedEndDate
}

func (c *CreateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CreateWorkOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateWorkOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

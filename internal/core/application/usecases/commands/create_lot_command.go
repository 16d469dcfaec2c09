package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateLotCommandIsNotConstructed = errors.New(
		"CreateLotCommand must be created via NewCreateLotCommand constructor",
	)
	ErrLotQuantityIsInvalid = errors.New("lot quantity must be greater than 0")
)

// CreateLotCommand represents a request to create a production lot for a
// product, optionally attached to a work order. The lot number is assigned
// during handling.
type CreateLotCommand struct { //nolint:recvcheck //using for validation
	lotID       kernel.UUID
	productID   kernel.UUID
	workOrderID *kernel.UUID
	quantity    int
	remarks     string

	guard guard.ConstructorGuard
}

// NewCreateLotCommand creates a command to register a new lot.
// Validates that the lot and product identifiers are valid, the optional
// work order identifier is valid when present, and quantity is positive.
func NewCreateLotCommand(
	lotID, productID kernel.UUID,
	workOrderID *kernel.UUID,
	quantity int,
	remarks string,
) (CreateLotCommand, error) {
	command := CreateLotCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLotID(lotID),
		command.setProductID(productID),
		command.setWorkOrderID(workOrderID),
		command.setQuantity(quantity),
	); err != nil {
		return CreateLotCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLotCommand) Validate() error {
	return c.guard.Validate(ErrCreateLotCommandIsNotConstructed)
}

// LotID returns the unique identifier for the lot.
func (c CreateLotCommand) LotID() kernel.UUID {
	return c.lotID
}

// ProductID returns the identifier of the lot's product.
func (c CreateLotCommand) ProductID() kernel.UUID {
	return c.productID
}

// WorkOrderID returns the optional identifier of the owning work order.
func (c CreateLotCommand) WorkOrderID() *kernel.UUID {
	return c.workOrderID
}

// Quantity returns the lot quantity.
func (c CreateLotCommand) Quantity() int {
	return c.quantity
}

// Remarks returns the optional free-form remarks.
func (c CreateLotCommand) Remarks() string {
	return c.remarks
}

func (c *CreateLotCommand) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}

	c.lotID = lotID
	return nil
}

func (c *CreateLotCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateLotCommand) setWorkOrderID(workOrderID *kernel.UUID) error {
	if workOrderID != nil {
		if err := workOrderID.Validate(); err != nil {
			return err
		}
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CreateLotCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrLotQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

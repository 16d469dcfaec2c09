package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrProductNameIsRequired = errors.New("product name is required")
)

// ProcessInput describes one routing step of a new product.
type ProcessInput struct {
	Name     string
	Sequence int
}

// CreateProductCommand represents a request to register a new product with
// its routing. Routing steps may be supplied in any order; the product keeps
// them sorted by sequence.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	code        string
	name        string
	description string
	processes   []ProcessInput

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the product ID is valid and code and name are not empty.
// Routing step contents are validated by the domain during handling.
func NewCreateProductCommand(
	productID kernel.UUID,
	code, name, description string,
	processes []ProcessInput,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		description: description,
		processes:   processes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setCode(code),
		command.setName(name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Code returns the business code of the product.
func (c CreateProductCommand) Code() string {
	return c.code
}

// Name returns the display name of the product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Processes returns the routing steps to create the product with.
func (c CreateProductCommand) Processes() []ProcessInput {
	return c.processes
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

package commands

import (
	"errors"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var (
	ErrCreateStandardCommandIsNotConstructed = errors.New(
		"CreateStandardCommand must be created via NewCreateStandardCommand constructor",
	)
	ErrStandardCodeIsRequired = errors.New("standard code is required")
	ErrStandardNameIsRequired = errors.New("standard name is required")
)

// CreateStandardCommand represents a request to register an inspection
// standard, the reference specification future measurements are checked
// against.
type CreateStandardCommand struct { //nolint:recvcheck //using for validation
	standardID     kernel.UUID
	code           string
	name           string
	category       string
	standardValue  string
	upperLimit     string
	lowerLimit     string
	unit           string
	applicableType inspection.Type
	description    string
	active         bool

	guard guard.ConstructorGuard
}

// NewCreateStandardCommand creates a command to register an inspection standard.
// Validates the identifier, code, name and applicable inspection type.
func NewCreateStandardCommand(
	standardID kernel.UUID,
	code, name, category string,
	standardValue, upperLimit, lowerLimit, unit string,
	applicableType inspection.Type,
	description string,
	active bool,
) (CreateStandardCommand, error) {
	command := CreateStandardCommand{
		category:      category,
		standardValue: standardValue,
		upperLimit:    upperLimit,
		lowerLimit:    lowerLimit,
		unit:          unit,
		description:   description,
		active:        active,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStandardID(standardID),
		command.setCode(code),
		command.setName(name),
		command.setApplicableType(applicableType),
	); err != nil {
		return CreateStandardCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStandardCommand) Validate() error {
	return c.guard.Validate(ErrCreateStandardCommandIsNotConstructed)
}

// StandardID returns the unique identifier for the standard.
func (c CreateStandardCommand) StandardID() kernel.UUID {
	return c.standardID
}

// Code returns the business code of the standard.
func (c CreateStandardCommand) Code() string {
	return c.code
}

// Name returns the display name of the standard.
func (c CreateStandardCommand) Name() string {
	return c.name
}

// Category returns the free-form category label.
func (c CreateStandardCommand) Category() string {
	return c.category
}

// StandardValue returns the nominal value measurements are compared against.
func (c CreateStandardCommand) StandardValue() string {
	return c.standardValue
}

// UpperLimit returns the upper tolerance bound.
func (c CreateStandardCommand) UpperLimit() string {
	return c.upperLimit
}

// LowerLimit returns the lower tolerance bound.
func (c CreateStandardCommand) LowerLimit() string {
	return c.lowerLimit
}

// Unit returns the measurement unit.
func (c CreateStandardCommand) Unit() string {
	return c.unit
}

// ApplicableType returns the inspection type the standard applies to.
func (c CreateStandardCommand) ApplicableType() inspection.Type {
	return c.applicableType
}

// Description returns the optional description.
func (c CreateStandardCommand) Description() string {
	return c.description
}

// Active reports whether the standard is in force.
func (c CreateStandardCommand) Active() bool {
	return c.active
}

func (c *CreateStandardCommand) setStandardID(standardID kernel.UUID) error {
	if err := standardID.Validate(); err != nil {
		return err
	}

	c.standardID = standardID
	return nil
}

func (c *CreateStandardCommand) setCode(code string) error {
	if code == "" {
		return ErrStandardCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateStandardCommand) setName(name string) error {
	if name == "" {
		return ErrStandardNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStandardCommand) setApplicableType(applicableType inspection.Type) error {
	if err := applicableType.Validate(); err != nil {
		return err
	}

	c.applicableType = applicableType
	return nil
}

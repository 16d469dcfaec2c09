package product

import (
	"errors"
	"fmt"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrProcessIsNotConstructed is returned when a Process instance was not
// created through the NewProcess factory method.
var ErrProcessIsNotConstructed = errors.New("Process must be created via NewProcess constructor")

// Process is one step of a product's routing, e.g. Cutting or Assembly.
// The sequence number orders the step within the routing; sequence validation
// across a work order uses routing position, not the raw sequence value, so
// numeric gaps are harmless.
//
// Process is a value object: immutable and safe to copy.
type Process struct {
	id       kernel.UUID
	name     string
	sequence int

	isConstructed bool
}

// NewProcess creates a routing step. The sequence must be positive and the
// name non-empty.
func NewProcess(id kernel.UUID, name string, sequence int) (Process, error) {
	process := Process{isConstructed: true}

	if err := errors.Join(
		process.setID(id),
		process.setName(name),
		process.setSequence(sequence),
	); err != nil {
		return Process{}, err
	}

	return process, nil
}

// Validate ensures the Process instance was properly constructed through NewProcess.
func (p Process) Validate() error {
	if !p.isConstructed {
		return ErrProcessIsNotConstructed
	}
	return nil
}

// IsEqual compares two processes by their unique identifiers.
func (p Process) IsEqual(other Process) bool {
	return p.id.IsEqual(other.id)
}

// ID returns the process's unique identifier.
func (p Process) ID() kernel.UUID {
	return p.id
}

// Name returns the process's display name.
func (p Process) Name() string {
	return p.name
}

// Sequence returns the process's position number within its routing.
func (p Process) Sequence() int {
	return p.sequence
}

func (p *Process) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Process) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Process) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}
	p.sequence = sequence
	return nil
}

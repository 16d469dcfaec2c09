package product

import (
	"errors"
	"fmt"
	"sort"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrDuplicateSequence is returned when a process with an already used
	// sequence number is added to a product's routing.
	ErrDuplicateSequence = errors.New("process sequence already present in routing")
)

// Product is the aggregate root for a manufactured item and its routing:
// the fixed, ordered list of processes every unit of the product passes
// through. The routing is linear; there are no parallel branches, optional
// steps, or rework loops.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name and code must be non-empty
//   - Routing sequence numbers are unique within the product
//   - Routing is always observed in ascending sequence order
type Product struct {
	id          kernel.UUID
	code        string
	name        string
	description string

	// routing is kept sorted by ascending sequence number
	routing []Process

	isConstructed bool
}

// NewProduct creates a new Product with an empty routing.
// Processes are attached afterwards via AddProcess.
func NewProduct(id kernel.UUID, code, name, description string) (*Product, error) {
	product := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setCode(code),
		product.setName(name),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The routing is re-sorted by sequence so callers need not preserve order.
func RestoreProduct(id kernel.UUID, code, name, description string, routing []Process) (*Product, error) {
	product, err := NewProduct(id, code, name, description)
	if err != nil {
		return nil, err
	}

	for _, process := range routing {
		if err = product.AddProcess(process); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Code returns the product's business code.
func (p *Product) Code() string {
	return p.code
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's free-text description.
func (p *Product) Description() string {
	return p.description
}

// Routing returns the product's processes in ascending sequence order.
// The returned slice is a copy; mutating it does not affect the product.
func (p *Product) Routing() []Process {
	routing := make([]Process, len(p.routing))
	copy(routing, p.routing)
	return routing
}

// AddProcess attaches a process to the routing, keeping the routing sorted
// by ascending sequence number. A sequence number may appear at most once
// per product; gaps between numbers are allowed.
func (p *Product) AddProcess(process Process) error {
	if err := process.Validate(); err != nil {
		return err
	}

	for _, existing := range p.routing {
		if existing.Sequence() == process.Sequence() {
			return fmt.Errorf("%w: %d", ErrDuplicateSequence, process.Sequence())
		}
	}

	p.routing = append(p.routing, process)
	sort.Slice(p.routing, func(i, j int) bool {
		return p.routing[i].Sequence() < p.routing[j].Sequence()
	})
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

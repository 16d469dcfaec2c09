// Package ports defines repository and notification interfaces for the
// production tracking domain. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Products are stored together with their routing, the ordered list of
// processes a lot must pass through.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns the complete product with its routing sorted by sequence.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product with its routing.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetProcess retrieves a single routing process by its identifier.
	// Used to validate process references on lot history records.
	GetProcess(ctx context.Context, id kernel.UUID) (product.Process, error)
}

package ports

import (
	"context"
	"time"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
)

// InspectionRepository defines the persistence contract for quality
// inspection aggregates. Inspections are stored together with their
// measurement items.
type InspectionRepository interface {
	// Add persists a new inspection aggregate with its items.
	Add(ctx context.Context, aggregate *inspection.Inspection) error

	// Update persists changes to an existing inspection aggregate.
	Update(ctx context.Context, aggregate *inspection.Inspection) error

	// Get retrieves an inspection aggregate by its unique identifier,
	// including its items.
	Get(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error)

	// GetForUpdate retrieves an inspection aggregate by its unique
	// identifier and locks its row for the rest of the transaction, so
	// concurrent completions of the same inspection serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*inspection.Inspection, error)

	// GetAll retrieves every inspection ordered by inspection date, newest first.
	GetAll(ctx context.Context) ([]*inspection.Inspection, error)

	// GetAllForLot retrieves the inspections recorded for a lot.
	GetAllForLot(ctx context.Context, lotID kernel.UUID) ([]*inspection.Inspection, error)

	// CountCreatedSince returns the number of inspections created at or
	// after the given instant. Used to serialize daily inspection numbering
	// inside a transaction.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// InspectionStandardRepository defines the persistence contract for
// inspection standards, the reference specifications measurement items
// are checked against.
type InspectionStandardRepository interface {
	// Add persists a new inspection standard.
	Add(ctx context.Context, standard *inspection.Standard) error

	// Get retrieves an inspection standard by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inspection.Standard, error)

	// GetAll retrieves every inspection standard ordered by code.
	GetAll(ctx context.Context) ([]*inspection.Standard, error)
}

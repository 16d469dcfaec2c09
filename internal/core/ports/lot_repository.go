package ports

import (
	"context"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
)

// LotRepository defines the persistence contract for lot aggregates.
type LotRepository interface {
	// Add persists a new lot aggregate to storage.
	Add(ctx context.Context, aggregate *lot.Lot) error

	// Update persists changes to an existing lot aggregate.
	Update(ctx context.Context, aggregate *lot.Lot) error

	// Get retrieves a lot aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lot.Lot, error)

	// GetByLotNumber retrieves a lot aggregate by its business number.
	GetByLotNumber(ctx context.Context, lotNumber string) (*lot.Lot, error)

	// GetAll retrieves every lot ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]*lot.Lot, error)

	// GetAllForWorkOrder retrieves the lots attached to a work order.
	GetAllForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*lot.Lot, error)

	// CountCreatedSince returns the number of lots created at or after the
	// given instant. Used to serialize daily lot numbering inside a
	// transaction.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// LotHistoryRepository defines the persistence contract for lot history
// records. Histories are immutable once recorded.
type LotHistoryRepository interface {
	// Add persists a new lot history record.
	Add(ctx context.Context, history *lot.History) error

	// GetAllForLot retrieves the history of a lot ordered by processing
	// time, oldest first.
	GetAllForLot(ctx context.Context, lotID kernel.UUID) ([]*lot.History, error)
}

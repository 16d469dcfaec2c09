package ports

import (
	"context"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order aggregates.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetForUpdate retrieves a work order and locks its row for the duration
	// of the current transaction. Concurrent process completions for the same
	// work order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAll retrieves every work order ordered by planned start date.
	GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)
}

// WorkResultRepository defines the persistence contract for work results,
// the per-process completion records of a work order. Work results are
// immutable once recorded.
type WorkResultRepository interface {
	// Add persists a new work result.
	Add(ctx context.Context, result *workorder.WorkResult) error

	// GetAllForWorkOrder retrieves the work results of a work order
	// ordered by recording time, oldest first.
	GetAllForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*workorder.WorkResult, error)

	// CountForWorkOrder returns the number of work results recorded for a
	// work order, which equals the number of completed routing steps.
	CountForWorkOrder(ctx context.Context, workOrderID kernel.UUID) (int, error)
}

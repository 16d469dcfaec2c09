package ports

import (
	"context"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"
)

// EquipmentRepository defines the persistence contract for equipment
// aggregates.
type EquipmentRepository interface {
	// Add persists a new equipment aggregate to storage.
	Add(ctx context.Context, aggregate *equipment.Equipment) error

	// Update persists changes to an existing equipment aggregate.
	Update(ctx context.Context, aggregate *equipment.Equipment) error

	// Get retrieves an equipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*equipment.Equipment, error)

	// GetAll retrieves every equipment record ordered by display sequence.
	GetAll(ctx context.Context) ([]*equipment.Equipment, error)
}

// TelemetryRepository defines the persistence contract for equipment
// telemetry samples. Samples are immutable once recorded.
type TelemetryRepository interface {
	// Add persists a new telemetry sample.
	Add(ctx context.Context, sample *equipment.Telemetry) error

	// GetLatestForEquipment retrieves the most recent telemetry sample for
	// a piece of equipment. Returns an object-not-found error when no
	// sample has been recorded yet.
	GetLatestForEquipment(ctx context.Context, equipmentID kernel.UUID) (*equipment.Telemetry, error)

	// GetAllForEquipment retrieves telemetry samples for a piece of
	// equipment ordered by recording time, newest first, up to limit rows.
	GetAllForEquipment(ctx context.Context, equipmentID kernel.UUID, limit int) ([]*equipment.Telemetry, error)
}

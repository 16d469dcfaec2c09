package queries

import (
	"errors"

	"mestrack/internal/pkg/guard"
)

var ErrGetEquipmentQueryIsNotConstructed = errors.New(
	"GetEquipmentQuery must be created via NewGetEquipmentQuery constructor",
)

// GetEquipmentQuery retrieves every equipment record with its latest
// telemetry sample. The response rows are the same summaries the dashboard
// uses.
type GetEquipmentQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEquipmentQuery creates a parameterless equipment query.
func NewGetEquipmentQuery() GetEquipmentQuery {
	return GetEquipmentQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEquipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetEquipmentQueryIsNotConstructed)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetEquipmentQueryHandler retrieves equipment summaries in display order.
type GetEquipmentQueryHandler struct {
	dashboard GetDashboardQueryHandler
}

// NewGetEquipmentQueryHandler creates a handler for equipment queries.
func NewGetEquipmentQueryHandler(db *gorm.DB) GetEquipmentQueryHandler {
	return GetEquipmentQueryHandler{dashboard: NewGetDashboardQueryHandler(db)}
}

// Handle executes the equipment query, reusing the dashboard's summary
// aggregation.
func (h GetEquipmentQueryHandler) Handle(ctx context.Context, query GetEquipmentQuery) ([]EquipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dashboard.equipmentSummaries(ctx)
}

package queries

import (
	"context"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInspectionsQueryHandler retrieves inspection rows with their lot
// numbers resolved, newest first.
type GetInspectionsQueryHandler struct {
	db *gorm.DB
}

// NewGetInspectionsQueryHandler creates a handler for inspection list queries.
func NewGetInspectionsQueryHandler(db *gorm.DB) GetInspectionsQueryHandler {
	return GetInspectionsQueryHandler{db: db}
}

// Handle executes the inspection list query.
func (h GetInspectionsQueryHandler) Handle(ctx context.Context, query GetInspectionsQuery) ([]InspectionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			i.id, i.inspection_number, i.lot_id, l.lot_number, i.type, i.status,
			i.result, i.sample_size, i.passed_count, i.failed_count,
			i.inspector, i.inspection_date, i.created_at
		FROM inspections i
		JOIN lots l ON l.id = i.lot_id
	`
	args := make([]any, 0, 1)
	if query.LotID() != nil {
		sqlQuery += " WHERE i.lot_id = ?"
		args = append(args, query.LotID().String())
	}
	sqlQuery += " ORDER BY i.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inspections := make([]InspectionResponse, 0)
	for rows.Next() {
		var response InspectionResponse
		var inspectionID, lotID uuid.UUID
		var inspectionType, status int
		var result *int

		if err = rows.Scan(
			&inspectionID, &response.InspectionNumber, &lotID, &response.LotNumber,
			&inspectionType, &status, &result, &response.SampleSize,
			&response.PassedCount, &response.FailedCount,
			&response.Inspector, &response.InspectionDate, &response.CreatedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(inspectionID[:]); err != nil {
			return nil, err
		}
		if response.LotID, err = kernel.UUIDFromBytes(lotID[:]); err != nil {
			return nil, err
		}

		response.Type = inspection.Type(inspectionType).String()
		response.Status = inspection.Status(status).String()
		if result != nil {
			resultName := inspection.Result(*result).String()
			response.Result = &resultName
		}
		inspections = append(inspections, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return inspections, nil
}

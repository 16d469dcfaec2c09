package queries

import (
	"context"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLotHistoryQueryHandler retrieves the process trace of a lot with
// process and equipment names resolved, ordered by processing time.
type GetLotHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetLotHistoryQueryHandler creates a handler for lot history queries.
func NewGetLotHistoryQueryHandler(db *gorm.DB) GetLotHistoryQueryHandler {
	return GetLotHistoryQueryHandler{db: db}
}

// Handle executes the lot history query.
func (h GetLotHistoryQueryHandler) Handle(ctx context.Context, query GetLotHistoryQuery) ([]LotHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id, h.process_id, pr.name, h.equipment_id, e.name,
			h.input_quantity, h.output_quantity, h.defect_quantity,
			h.result, h.operator, h.remarks, h.processed_at
		FROM lot_histories h
		JOIN processes pr ON pr.id = h.process_id
		JOIN equipment e ON e.id = h.equipment_id
		WHERE h.lot_id = ?
		ORDER BY h.processed_at
	`, query.LotID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]LotHistoryResponse, 0)
	for rows.Next() {
		var response LotHistoryResponse
		var historyID, processID, equipmentID uuid.UUID
		var result int

		if err = rows.Scan(
			&historyID, &processID, &response.ProcessName, &equipmentID, &response.EquipmentName,
			&response.InputQuantity, &response.OutputQuantity, &response.DefectQuantity,
			&result, &response.Operator, &response.Remarks, &response.ProcessedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(historyID[:]); err != nil {
			return nil, err
		}
		if response.ProcessID, err = kernel.UUIDFromBytes(processID[:]); err != nil {
			return nil, err
		}
		if response.EquipmentID, err = kernel.UUIDFromBytes(equipmentID[:]); err != nil {
			return nil, err
		}

		response.Result = lot.ProcessResult(result).String()
		histories = append(histories, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return histories, nil
}

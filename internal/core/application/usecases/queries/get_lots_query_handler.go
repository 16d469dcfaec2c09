package queries

import (
	"context"
	"database/sql"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLotsQueryHandler retrieves lot rows with their product names, newest
// first.
type GetLotsQueryHandler struct {
	db *gorm.DB
}

// NewGetLotsQueryHandler creates a handler for lot list queries.
func NewGetLotsQueryHandler(db *gorm.DB) GetLotsQueryHandler {
	return GetLotsQueryHandler{db: db}
}

// Handle executes the lot list query.
func (h GetLotsQueryHandler) Handle(ctx context.Context, query GetLotsQuery) ([]LotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			l.id, l.lot_number, l.product_id, p.name, l.work_order_id,
			l.quantity, l.status, l.remarks, l.created_at, l.started_at, l.completed_at
		FROM lots l
		JOIN products p ON p.id = l.product_id
	`
	args := make([]any, 0, 1)
	if query.LotNumber() != "" {
		sqlQuery += " WHERE l.lot_number = ?"
		args = append(args, query.LotNumber())
	}
	sqlQuery += " ORDER BY l.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lots := make([]LotResponse, 0)
	for rows.Next() {
		response, scanErr := scanLotRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		lots = append(lots, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lots, nil
}

func scanLotRow(rows *sql.Rows) (LotResponse, error) {
	var response LotResponse
	var lotID, productID uuid.UUID
	var workOrderID *uuid.UUID
	var status int

	if err := rows.Scan(
		&lotID, &response.LotNumber, &productID, &response.ProductName, &workOrderID,
		&response.Quantity, &status, &response.Remarks,
		&response.CreatedAt, &response.StartedAt, &response.CompletedAt,
	); err != nil {
		return LotResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(lotID[:])
	if err != nil {
		return LotResponse{}, err
	}
	response.ID = id

	prodID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return LotResponse{}, err
	}
	response.ProductID = prodID

	if workOrderID != nil {
		woID, woErr := kernel.UUIDFromBytes((*workOrderID)[:])
		if woErr != nil {
			return LotResponse{}, woErr
		}
		response.WorkOrderID = &woID
	}

	response.Status = lot.Status(status).String()
	return response, nil
}

package queries

import (
	"context"

	"mestrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLotQueryHandler retrieves one lot row with its product name.
type GetLotQueryHandler struct {
	db *gorm.DB
}

// NewGetLotQueryHandler creates a handler for single lot queries.
func NewGetLotQueryHandler(db *gorm.DB) GetLotQueryHandler {
	return GetLotQueryHandler{db: db}
}

// Handle executes the single lot query. Returns an object-not-found error
// when no lot with the given identifier exists.
func (h GetLotQueryHandler) Handle(ctx context.Context, query GetLotQuery) (LotResponse, error) {
	if err := query.Validate(); err != nil {
		return LotResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id, l.lot_number, l.product_id, p.name, l.work_order_id,
			l.quantity, l.status, l.remarks, l.created_at, l.started_at, l.completed_at
		FROM lots l
		JOIN products p ON p.id = l.product_id
		WHERE l.id = ?
	`, query.LotID().String()).Rows()
	if err != nil {
		return LotResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return LotResponse{}, err
		}
		return LotResponse{}, errs.NewObjectNotFoundError("lotID", query.LotID())
	}

	return scanLotRow(rows)
}

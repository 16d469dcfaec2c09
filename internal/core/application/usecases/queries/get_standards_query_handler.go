package queries

import (
	"context"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStandardsQueryHandler retrieves inspection standards ordered by code.
type GetStandardsQueryHandler struct {
	db *gorm.DB
}

// NewGetStandardsQueryHandler creates a handler for standards queries.
func NewGetStandardsQueryHandler(db *gorm.DB) GetStandardsQueryHandler {
	return GetStandardsQueryHandler{db: db}
}

// Handle executes the standards query.
func (h GetStandardsQueryHandler) Handle(ctx context.Context, query GetStandardsQuery) ([]StandardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, name, category, standard_value, upper_limit, lower_limit,
			unit, applicable_type, description, active
		FROM inspection_standards
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standards := make([]StandardResponse, 0)
	for rows.Next() {
		var response StandardResponse
		var id uuid.UUID
		var applicableType int

		if err = rows.Scan(
			&id, &response.Code, &response.Name, &response.Category,
			&response.StandardValue, &response.UpperLimit, &response.LowerLimit,
			&response.Unit, &applicableType, &response.Description, &response.Active,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		response.ApplicableType = inspection.Type(applicableType).String()
		standards = append(standards, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return standards, nil
}

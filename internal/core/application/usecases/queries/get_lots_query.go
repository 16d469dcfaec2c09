package queries

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetLotsQueryIsNotConstructed = errors.New(
	"GetLotsQuery must be created via NewGetLotsQuery constructor",
)

// GetLotsQuery retrieves lots, optionally filtered by business lot number.
type GetLotsQuery struct {
	lotNumber string

	guard guard.ConstructorGuard
}

// NewGetLotsQuery creates a query for all lots. An empty lotNumber means no
// filter.
func NewGetLotsQuery(lotNumber string) GetLotsQuery {
	return GetLotsQuery{lotNumber: lotNumber, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLotsQuery) Validate() error {
	return q.guard.Validate(ErrGetLotsQueryIsNotConstructed)
}

// LotNumber returns the optional lot number filter.
func (q GetLotsQuery) LotNumber() string {
	return q.lotNumber
}

// LotResponse represents one lot row with its product name resolved.
type LotResponse struct {
	ID          kernel.UUID  `json:"id"`
	LotNumber   string       `json:"lotNumber"`
	ProductID   kernel.UUID  `json:"productId"`
	ProductName string       `json:"productName"`
	WorkOrderID *kernel.UUID `json:"workOrderId,omitempty"`
	Quantity    int          `json:"quantity"`
	Status      string       `json:"status"`
	Remarks     string       `json:"remarks,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	StartedAt   *time.Time   `json:"startedAt,omitempty"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

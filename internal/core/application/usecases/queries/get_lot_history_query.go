package queries

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetLotHistoryQueryIsNotConstructed = errors.New(
	"GetLotHistoryQuery must be created via NewGetLotHistoryQuery constructor",
)

// GetLotHistoryQuery retrieves the process trace of a lot, oldest first.
type GetLotHistoryQuery struct {
	lotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLotHistoryQuery creates a query for a lot's history.
func NewGetLotHistoryQuery(lotID kernel.UUID) (GetLotHistoryQuery, error) {
	if err := lotID.Validate(); err != nil {
		return GetLotHistoryQuery{}, err
	}
	return GetLotHistoryQuery{lotID: lotID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLotHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLotHistoryQueryIsNotConstructed)
}

// LotID returns the identifier of the traced lot.
func (q GetLotHistoryQuery) LotID() kernel.UUID {
	return q.lotID
}

// LotHistoryResponse represents one process trace entry with the process
// and equipment names resolved.
type LotHistoryResponse struct {
	ID             kernel.UUID `json:"id"`
	ProcessID      kernel.UUID `json:"processId"`
	ProcessName    string      `json:"processName"`
	EquipmentID    kernel.UUID `json:"equipmentId"`
	EquipmentName  string      `json:"equipmentName"`
	InputQuantity  int         `json:"inputQuantity"`
	OutputQuantity int         `json:"outputQuantity"`
	DefectQuantity int         `json:"defectQuantity"`
	Result         string      `json:"result"`
	Operator       string      `json:"operator,omitempty"`
	Remarks        string      `json:"remarks,omitempty"`
	ProcessedAt    time.Time   `json:"processedAt"`
}

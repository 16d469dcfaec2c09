package queries

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the production dashboard snapshot: today's
// production totals, per-product defect rates, equipment states and work
// order progress.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a parameterless dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// TodayProduction sums lot history quantities recorded since local midnight.
// DefectRate is a fraction of total handled quantity, not a percentage.
type TodayProduction struct {
	Output     int64   `json:"output"`
	Defects    int64   `json:"defects"`
	DefectRate float64 `json:"defectRate"`
}

// ProductDefectRate reports a product's cumulative output, defects and
// defect rate as a percentage.
type ProductDefectRate struct {
	ProductID   kernel.UUID `json:"productId"`
	ProductName string      `json:"productName"`
	Output      int64       `json:"output"`
	Defects     int64       `json:"defects"`
	DefectRate  float64     `json:"defectRate"`
}

// EquipmentSummary reports a piece of equipment with its latest telemetry
// sample. Telemetry fields are nil when no sample was recorded yet.
type EquipmentSummary struct {
	EquipmentID     kernel.UUID `json:"equipmentId"`
	Name            string      `json:"name"`
	Location        string      `json:"location"`
	Status          string      `json:"status"`
	Temperature     *float64    `json:"temperature,omitempty"`
	ProductionSpeed *int        `json:"productionSpeed,omitempty"`
	RecordedAt      *time.Time  `json:"recordedAt,omitempty"`
}

// WorkProgress reports how far a work order has come, measured by its lots:
// completed lots over total lots as a percentage.
type WorkProgress struct {
	WorkOrderID   kernel.UUID `json:"workOrderId"`
	ProductName   string      `json:"productName"`
	Status        string      `json:"status"`
	TotalLots     int64       `json:"totalLots"`
	CompletedLots int64       `json:"completedLots"`
	Progress      float64     `json:"progress"`
}

// GetDashboardQueryResponse is the dashboard snapshot.
type GetDashboardQueryResponse struct {
	TodayProduction    TodayProduction     `json:"todayProduction"`
	ProductDefectRates []ProductDefectRate `json:"productDefectRates"`
	Equipment          []EquipmentSummary  `json:"equipment"`
	WorkProgresses     []WorkProgress      `json:"workProgresses"`
}

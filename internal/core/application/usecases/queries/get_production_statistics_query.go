package queries

import (
	"errors"

	"mestrack/internal/pkg/guard"
)

var ErrGetProductionStatisticsQueryIsNotConstructed = errors.New(
	"GetProductionStatisticsQuery must be created via NewGetProductionStatisticsQuery constructor",
)

// GetProductionStatisticsQuery retrieves the plant-wide production and
// quality statistics, including the OEE breakdown.
type GetProductionStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductionStatisticsQuery creates a parameterless statistics query.
func NewGetProductionStatisticsQuery() GetProductionStatisticsQuery {
	return GetProductionStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductionStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionStatisticsQueryIsNotConstructed)
}

// GetProductionStatisticsQueryResponse is the statistics snapshot. All
// percentage figures are rounded to two decimals; when no production
// activity exists, every OEE component is 0.
type GetProductionStatisticsQueryResponse struct {
	TotalLots            int64   `json:"totalLots"`
	CompletedLots        int64   `json:"completedLots"`
	InProgressLots       int64   `json:"inProgressLots"`
	TotalProduced        int64   `json:"totalProduced"`
	TotalDefects         int64   `json:"totalDefects"`
	OverallDefectRate    float64 `json:"overallDefectRate"`
	TotalInspections     int64   `json:"totalInspections"`
	CompletedInspections int64   `json:"completedInspections"`
	PassedInspections    int64   `json:"passedInspections"`
	FailedInspections    int64   `json:"failedInspections"`
	InspectionPassRate   float64 `json:"inspectionPassRate"`
	Availability         float64 `json:"availability"`
	Performance          float64 `json:"performance"`
	Quality              float64 `json:"quality"`
	OEE                  float64 `json:"oee"`
}

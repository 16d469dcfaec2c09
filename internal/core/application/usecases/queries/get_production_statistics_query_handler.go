package queries

import (
	"context"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetProductionStatisticsQueryHandler computes plant-wide production and
// quality statistics. Availability and performance come from the injected
// estimator; quality is derived from recorded quantities; all three collapse
// to 0 when no production activity exists.
type GetProductionStatisticsQueryHandler struct {
	db        *gorm.DB
	estimator services.OEEEstimator
}

// NewGetProductionStatisticsQueryHandler creates a handler for statistics queries.
func NewGetProductionStatisticsQueryHandler(db *gorm.DB, estimator services.OEEEstimator) GetProductionStatisticsQueryHandler {
	return GetProductionStatisticsQueryHandler{db: db, estimator: estimator}
}

// Handle executes the statistics query.
func (h GetProductionStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetProductionStatisticsQuery,
) (GetProductionStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductionStatisticsQueryResponse{}, err
	}

	var response GetProductionStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM lots
	`, lot.Completed, lot.InProgress).Row()
	if err := row.Scan(&response.TotalLots, &response.CompletedLots, &response.InProgressLots); err != nil {
		return GetProductionStatisticsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(output_quantity), 0),
			COALESCE(SUM(defect_quantity), 0)
		FROM lot_histories
	`).Row()
	if err := row.Scan(&response.TotalProduced, &response.TotalDefects); err != nil {
		return GetProductionStatisticsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ? AND result = ?),
			COUNT(*) FILTER (WHERE status = ? AND result = ?)
		FROM inspections
	`, inspection.StatusCompleted,
		inspection.StatusCompleted, inspection.Pass,
		inspection.StatusCompleted, inspection.Fail).Row()
	if err := row.Scan(
		&response.TotalInspections, &response.CompletedInspections,
		&response.PassedInspections, &response.FailedInspections,
	); err != nil {
		return GetProductionStatisticsQueryResponse{}, err
	}

	applyDerivedFigures(&response, h.estimator)

	return response, nil
}

// applyDerivedFigures fills the rate and OEE fields from the scanned counts.
// The inspection pass rate is passed / total, pending inspections included;
// the OEE components stay 0 until any production activity exists.
func applyDerivedFigures(response *GetProductionStatisticsQueryResponse, estimator services.OEEEstimator) {
	response.OverallDefectRate = DefectRatePercent(response.TotalProduced, response.TotalDefects)
	response.InspectionPassRate = ProgressPercent(response.PassedInspections, response.TotalInspections)

	if response.TotalProduced+response.TotalDefects > 0 {
		response.Availability = Round2(estimator.Availability())
		response.Performance = Round2(estimator.Performance())
		response.Quality = QualityPercent(response.TotalProduced, response.TotalDefects)
		response.OEE = OEE(response.Availability, response.Performance, response.Quality)
	}
}

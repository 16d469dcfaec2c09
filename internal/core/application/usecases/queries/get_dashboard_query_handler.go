package queries

import (
	"context"
	"sort"
	"time"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDashboardQueryHandler assembles the dashboard snapshot from four
// aggregation queries. All sums and counts run in SQL; only the rate
// arithmetic and sorting happen in Go.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse
	var err error

	if response.TodayProduction, err = h.todayProduction(ctx); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if response.ProductDefectRates, err = h.productDefectRates(ctx); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if response.Equipment, err = h.equipmentSummaries(ctx); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if response.WorkProgresses, err = h.workProgresses(ctx); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return response, nil
}

func (h GetDashboardQueryHandler) todayProduction(ctx context.Context) (TodayProduction, error) {
	now := time.Now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	var production TodayProduction
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(output_quantity), 0),
			COALESCE(SUM(defect_quantity), 0)
		FROM lot_histories
		WHERE processed_at >= ?
	`, startOfDay).Row()

	if err := row.Scan(&production.Output, &production.Defects); err != nil {
		return TodayProduction{}, err
	}

	production.DefectRate = DefectRateFraction(production.Output, production.Defects)
	return production, nil
}

func (h GetDashboardQueryHandler) productDefectRates(ctx context.Context) ([]ProductDefectRate, error) {
	rates := make([]ProductDefectRate, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			COALESCE(SUM(h.output_quantity), 0),
			COALESCE(SUM(h.defect_quantity), 0)
		FROM lot_histories h
		JOIN lots l ON l.id = h.lot_id
		JOIN products p ON p.id = l.product_id
		GROUP BY p.id, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rate ProductDefectRate
		var id uuid.UUID

		if err = rows.Scan(&id, &rate.ProductName, &rate.Output, &rate.Defects); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rate.ProductID = productID
		rate.DefectRate = DefectRatePercent(rate.Output, rate.Defects)
		rates = append(rates, rate)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].DefectRate > rates[j].DefectRate
	})
	return rates, nil
}

func (h GetDashboardQueryHandler) equipmentSummaries(ctx context.Context) ([]EquipmentSummary, error) {
	summaries := make([]EquipmentSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name,
			e.location,
			e.status,
			t.temperature,
			t.production_speed,
			t.recorded_at
		FROM equipment e
		LEFT JOIN LATERAL (
			SELECT temperature, production_speed, recorded_at
			FROM telemetries
			WHERE equipment_id = e.id
			ORDER BY recorded_at DESC
			LIMIT 1
		) t ON true
		ORDER BY e.sequence
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary EquipmentSummary
		var id uuid.UUID
		var status int

		if err = rows.Scan(
			&id, &summary.Name, &summary.Location, &status,
			&summary.Temperature, &summary.ProductionSpeed, &summary.RecordedAt,
		); err != nil {
			return nil, err
		}

		equipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.EquipmentID = equipmentID
		summary.Status = equipment.Status(status).String()
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (h GetDashboardQueryHandler) workProgresses(ctx context.Context) ([]WorkProgress, error) {
	progresses := make([]WorkProgress, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			p.name,
			w.status,
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.status = ?)
		FROM work_orders w
		JOIN products p ON p.id = w.product_id
		LEFT JOIN lots l ON l.work_order_id = w.id
		GROUP BY w.id, p.name, w.status
	`, lot.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var progress WorkProgress
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &progress.ProductName, &status,
			&progress.TotalLots, &progress.CompletedLots); err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		progress.WorkOrderID = workOrderID
		progress.Status = workorder.Status(status).String()
		progress.Progress = ProgressPercent(progress.CompletedLots, progress.TotalLots)
		progresses = append(progresses, progress)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(progresses, func(i, j int) bool {
		return progresses[i].Progress > progresses[j].Progress
	})
	return progresses, nil
}

package http

import (
	"net/http"

	"mestrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard - returns today's production
// summary, per-product defect rates, equipment states and work progress.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardQuery()

	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboard)
}

// GetStatistics handles GET /api/v1/statistics - returns cumulative
// production and inspection statistics with the OEE estimate.
func (s *Server) GetStatistics(ctx echo.Context) error {
	query := queries.NewGetProductionStatisticsQuery()

	statistics, err := s.handlers.GetStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statistics)
}

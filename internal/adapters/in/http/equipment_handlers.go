package http

import (
	"net/http"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewEquipment is the request body for registering a production line machine.
type NewEquipment struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
	Sequence int    `json:"sequence"`
}

// NewTelemetry is the request body for reporting an equipment status sample.
type NewTelemetry struct {
	Status          string  `json:"status"`
	Temperature     float64 `json:"temperature"`
	ProductionSpeed int     `json:"productionSpeed"`
}

// CreateEquipment handles POST /api/v1/equipment - registers a machine on
// the production line.
func (s *Server) CreateEquipment(ctx echo.Context) error {
	var body NewEquipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	equipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateEquipmentCommand(
		equipmentID, body.Name, body.Location, body.Type, body.Sequence,
	)
	if err != nil {
		return badRequest(ctx, "Invalid equipment data: "+err.Error())
	}

	if handleErr := s.handlers.CreateEquipment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: equipmentID})
}

// GetEquipment handles GET /api/v1/equipment - lists machines in line order
// with their latest telemetry.
func (s *Server) GetEquipment(ctx echo.Context) error {
	query := queries.NewGetEquipmentQuery()

	machines, err := s.handlers.GetEquipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, machines)
}

// RecordTelemetry handles POST /api/v1/equipment/:id/telemetry - records a
// status sample and updates the machine's current status.
func (s *Server) RecordTelemetry(ctx echo.Context) error {
	equipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid equipment ID: "+err.Error())
	}

	var body NewTelemetry
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := equipment.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid equipment status: "+err.Error())
	}

	cmd, err := commands.NewRecordTelemetryCommand(
		equipmentID, status, body.Temperature, body.ProductionSpeed,
	)
	if err != nil {
		return badRequest(ctx, "Invalid telemetry data: "+err.Error())
	}

	if handleErr := s.handlers.RecordTelemetry.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

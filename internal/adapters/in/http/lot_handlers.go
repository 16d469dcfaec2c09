package http

import (
	"net/http"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"

	"github.com/labstack/echo/v4"
)

// NewLot is the request body for lot creation. The lot number is assigned by
// the server.
type NewLot struct {
	ProductID   string  `json:"productId"`
	WorkOrderID *string `json:"workOrderId,omitempty"`
	Quantity    int     `json:"quantity"`
	Remarks     string  `json:"remarks,omitempty"`
}

// LotStatusUpdate is the request body for a manual lot status transition.
type LotStatusUpdate struct {
	Status string `json:"status"`
}

// NewLotHistory is the request body for recording a process trace entry.
type NewLotHistory struct {
	ProcessID      string `json:"processId"`
	EquipmentID    string `json:"equipmentId"`
	InputQuantity  int    `json:"inputQuantity"`
	OutputQuantity int    `json:"outputQuantity"`
	DefectQuantity int    `json:"defectQuantity"`
	Result         string `json:"result"`
	Operator       string `json:"operator,omitempty"`
	Remarks        string `json:"remarks,omitempty"`
}

// CreateLot handles POST /api/v1/lots - creates a lot with the next daily
// lot number.
func (s *Server) CreateLot(ctx echo.Context) error {
	var body NewLot
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product ID: "+err.Error())
	}

	var workOrderID *kernel.UUID
	if body.WorkOrderID != nil {
		id, woErr := kernel.UUIDFromString(*body.WorkOrderID)
		if woErr != nil {
			return badRequest(ctx, "Invalid work order ID: "+woErr.Error())
		}
		workOrderID = &id
	}

	lotID := kernel.NewUUID()
	cmd, err := commands.NewCreateLotCommand(
		lotID, productID, workOrderID, body.Quantity, body.Remarks,
	)
	if err != nil {
		return badRequest(ctx, "Invalid lot data: "+err.Error())
	}

	if handleErr := s.handlers.CreateLot.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: lotID})
}

// GetLots handles GET /api/v1/lots - lists lots, optionally filtered by the
// lotNumber query parameter.
func (s *Server) GetLots(ctx echo.Context) error {
	query := queries.NewGetLotsQuery(ctx.QueryParam("lotNumber"))

	lots, err := s.handlers.GetLots.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lots)
}

// GetLot handles GET /api/v1/lots/:id - retrieves a single lot.
func (s *Server) GetLot(ctx echo.Context) error {
	lotID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid lot ID: "+err.Error())
	}

	query, err := queries.NewGetLotQuery(lotID)
	if err != nil {
		return badRequest(ctx, "Invalid lot query: "+err.Error())
	}

	response, err := s.handlers.GetLot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateLotStatus handles PATCH /api/v1/lots/:id/status - applies a manual
// status transition.
func (s *Server) UpdateLotStatus(ctx echo.Context) error {
	lotID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid lot ID: "+err.Error())
	}

	var body LotStatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := lot.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid lot status: "+err.Error())
	}

	cmd, err := commands.NewUpdateLotStatusCommand(lotID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if handleErr := s.handlers.UpdateLotStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddLotHistory handles POST /api/v1/lots/:id/history - appends a process
// trace entry and applies the automatic status transition.
func (s *Server) AddLotHistory(ctx echo.Context) error {
	lotID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid lot ID: "+err.Error())
	}

	var body NewLotHistory
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processID, err := kernel.UUIDFromString(body.ProcessID)
	if err != nil {
		return badRequest(ctx, "Invalid process ID: "+err.Error())
	}

	equipmentID, err := kernel.UUIDFromString(body.EquipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid equipment ID: "+err.Error())
	}

	result, err := lot.ProcessResultFromString(body.Result)
	if err != nil {
		return badRequest(ctx, "Invalid process result: "+err.Error())
	}

	cmd, err := commands.NewAddLotHistoryCommand(
		lotID, processID, equipmentID,
		body.InputQuantity, body.OutputQuantity, body.DefectQuantity,
		result, body.Operator, body.Remarks,
	)
	if err != nil {
		return badRequest(ctx, "Invalid history data: "+err.Error())
	}

	if handleErr := s.handlers.AddLotHistory.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLotHistory handles GET /api/v1/lots/:id/history - lists the process
// trace of a lot in processing order.
func (s *Server) GetLotHistory(ctx echo.Context) error {
	lotID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid lot ID: "+err.Error())
	}

	query, err := queries.NewGetLotHistoryQuery(lotID)
	if err != nil {
		return badRequest(ctx, "Invalid history query: "+err.Error())
	}

	history, err := s.handlers.GetLotHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

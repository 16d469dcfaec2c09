package http

import (
	"net/http"
	"time"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewWorkOrder is the request body for work order creation.
type NewWorkOrder struct {
	ProductID        string     `json:"productId"`
	Quantity         int        `json:"quantity"`
	PlannedStartDate *time.Time `json:"plannedStartDate,omitempty"`
	PlannedEndDate   *time.Time `json:"plannedEndDate,omitempty"`
}

// ProcessCompletion is the request body for reporting a finished routing step.
type ProcessCompletion struct {
	ProcessID    string `json:"processId"`
	GoodQuantity int    `json:"goodQuantity"`
	BadQuantity  int    `json:"badQuantity"`
}

// CreateWorkOrder handles POST /api/v1/work-orders - plans a new work order.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body NewWorkOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product ID: "+err.Error())
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		workOrderID, productID, body.Quantity, body.PlannedStartDate, body.PlannedEndDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid work order data: "+err.Error())
	}

	if handleErr := s.handlers.CreateWorkOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: workOrderID})
}

// CompleteProcess handles POST /api/v1/work-orders/:id/complete-process -
// reports good and bad quantities for the next routing step. The quality gate
// and routing sequence are enforced by the use case.
func (s *Server) CompleteProcess(ctx echo.Context) error {
	workOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid work order ID: "+err.Error())
	}

	var body ProcessCompletion
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processID, err := kernel.UUIDFromString(body.ProcessID)
	if err != nil {
		return badRequest(ctx, "Invalid process ID: "+err.Error())
	}

	cmd, err := commands.NewCompleteProcessCommand(
		workOrderID, processID, body.GoodQuantity, body.BadQuantity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.handlers.CompleteProcess.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

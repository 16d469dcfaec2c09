// Package http exposes the application's use cases over a JSON REST API.
// Each handler binds the request, builds a command or query, dispatches it
// to the application layer and translates domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"mestrack/internal/adapters/out/ws"
	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/services"
	"mestrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	hub      *ws.Hub
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateProduct      commands.CreateProductCommandHandler
	CreateWorkOrder    commands.CreateWorkOrderCommandHandler
	CompleteProcess    commands.CompleteProcessCommandHandler
	CreateLot          commands.CreateLotCommandHandler
	UpdateLotStatus    commands.UpdateLotStatusCommandHandler
	AddLotHistory      commands.AddLotHistoryCommandHandler
	CreateInspection   commands.CreateInspectionCommandHandler
	CompleteInspection commands.CompleteInspectionCommandHandler
	CreateStandard     commands.CreateStandardCommandHandler
	CreateEquipment    commands.CreateEquipmentCommandHandler
	RecordTelemetry    commands.RecordTelemetryCommandHandler

	GetLots        queries.GetLotsQueryHandler
	GetLot         queries.GetLotQueryHandler
	GetLotHistory  queries.GetLotHistoryQueryHandler
	GetInspections queries.GetInspectionsQueryHandler
	GetStandards   queries.GetStandardsQueryHandler
	GetEquipment   queries.GetEquipmentQueryHandler
	GetDashboard   queries.GetDashboardQueryHandler
	GetStatistics  queries.GetProductionStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The hub serves websocket subscriptions.
func NewServer(handlers Handlers, hub *ws.Hub) *Server {
	return &Server{
		handlers: handlers,
		hub:      hub,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)

	api.POST("/work-orders", s.CreateWorkOrder)
	api.POST("/work-orders/:id/complete-process", s.CompleteProcess)

	api.POST("/lots", s.CreateLot)
	api.GET("/lots", s.GetLots)
	api.GET("/lots/:id", s.GetLot)
	api.PATCH("/lots/:id/status", s.UpdateLotStatus)
	api.POST("/lots/:id/history", s.AddLotHistory)
	api.GET("/lots/:id/history", s.GetLotHistory)

	api.POST("/inspections", s.CreateInspection)
	api.GET("/inspections", s.GetInspections)
	api.POST("/inspections/:id/complete", s.CompleteInspection)
	api.POST("/standards", s.CreateStandard)
	api.GET("/standards", s.GetStandards)

	api.POST("/equipment", s.CreateEquipment)
	api.GET("/equipment", s.GetEquipment)
	api.POST("/equipment/:id/telemetry", s.RecordTelemetry)

	api.GET("/dashboard", s.GetDashboard)
	api.GET("/statistics", s.GetStatistics)

	e.GET("/ws", s.Subscribe)
}

// Subscribe handles GET /ws - upgrades the connection and subscribes the
// client to the topics named in the "topics" query parameter.
func (s *Server) Subscribe(ctx echo.Context) error {
	return s.hub.HandleConnection(ctx.Response(), ctx.Request())
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case failure to the HTTP status its category calls
// for: missing aggregates are 404, state machine and routing violations are
// conflicts, quality gate rejections are 422, validation failures are 400.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrDefectRateExceeded):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrOutOfSequence),
		errors.Is(err, services.ErrRoutingExhausted),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

package http

import (
	"net/http"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewInspection is the request body for opening a quality inspection. The
// inspection number is assigned by the server.
type NewInspection struct {
	LotID      string              `json:"lotId"`
	ProcessID  *string             `json:"processId,omitempty"`
	Type       string              `json:"type"`
	SampleSize int                 `json:"sampleSize"`
	Inspector  string              `json:"inspector,omitempty"`
	Remarks    string              `json:"remarks,omitempty"`
	Items      []NewInspectionItem `json:"items"`
}

// NewInspectionItem is one measured check against a standard.
type NewInspectionItem struct {
	StandardID    string `json:"standardId"`
	MeasuredValue string `json:"measuredValue,omitempty"`
	Result        string `json:"result"`
	Remarks       string `json:"remarks,omitempty"`
}

// InspectionCompletion is the request body for closing an inspection.
type InspectionCompletion struct {
	Result string `json:"result"`
}

// NewStandard is the request body for registering an inspection standard.
type NewStandard struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Category       string `json:"category,omitempty"`
	StandardValue  string `json:"standardValue,omitempty"`
	UpperLimit     string `json:"upperLimit,omitempty"`
	LowerLimit     string `json:"lowerLimit,omitempty"`
	Unit           string `json:"unit,omitempty"`
	ApplicableType string `json:"applicableType"`
	Description    string `json:"description,omitempty"`
	Active         bool   `json:"active"`
}

// CreateInspection handles POST /api/v1/inspections - opens an inspection
// for a lot with the next daily inspection number.
func (s *Server) CreateInspection(ctx echo.Context) error {
	var body NewInspection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lotID, err := kernel.UUIDFromString(body.LotID)
	if err != nil {
		return badRequest(ctx, "Invalid lot ID: "+err.Error())
	}

	var processID *kernel.UUID
	if body.ProcessID != nil {
		id, procErr := kernel.UUIDFromString(*body.ProcessID)
		if procErr != nil {
			return badRequest(ctx, "Invalid process ID: "+procErr.Error())
		}
		processID = &id
	}

	inspectionType, err := inspection.TypeFromString(body.Type)
	if err != nil {
		return badRequest(ctx, "Invalid inspection type: "+err.Error())
	}

	items := make([]commands.ItemInput, len(body.Items))
	for i, item := range body.Items {
		standardID, itemErr := kernel.UUIDFromString(item.StandardID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid standard ID: "+itemErr.Error())
		}
		result, itemErr := inspection.ResultFromString(item.Result)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item result: "+itemErr.Error())
		}
		items[i] = commands.ItemInput{
			StandardID:    standardID,
			MeasuredValue: item.MeasuredValue,
			Result:        result,
			Remarks:       item.Remarks,
		}
	}

	inspectionID := kernel.NewUUID()
	cmd, err := commands.NewCreateInspectionCommand(
		inspectionID, lotID, processID, inspectionType,
		body.SampleSize, body.Inspector, body.Remarks, items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid inspection data: "+err.Error())
	}

	if handleErr := s.handlers.CreateInspection.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: inspectionID})
}

// GetInspections handles GET /api/v1/inspections - lists inspections,
// optionally filtered by the lotId query parameter.
func (s *Server) GetInspections(ctx echo.Context) error {
	var lotID *kernel.UUID
	if raw := ctx.QueryParam("lotId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid lot ID: "+err.Error())
		}
		lotID = &id
	}

	query, err := queries.NewGetInspectionsQuery(lotID)
	if err != nil {
		return badRequest(ctx, "Invalid inspections query: "+err.Error())
	}

	inspections, err := s.handlers.GetInspections.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inspections)
}

// CompleteInspection handles POST /api/v1/inspections/:id/complete - records
// the final result and closes the inspection.
func (s *Server) CompleteInspection(ctx echo.Context) error {
	inspectionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid inspection ID: "+err.Error())
	}

	var body InspectionCompletion
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := inspection.ResultFromString(body.Result)
	if err != nil {
		return badRequest(ctx, "Invalid inspection result: "+err.Error())
	}

	cmd, err := commands.NewCompleteInspectionCommand(inspectionID, result)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.handlers.CompleteInspection.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStandard handles POST /api/v1/standards - registers an inspection
// standard.
func (s *Server) CreateStandard(ctx echo.Context) error {
	var body NewStandard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	applicableType, err := inspection.TypeFromString(body.ApplicableType)
	if err != nil {
		return badRequest(ctx, "Invalid applicable type: "+err.Error())
	}

	standardID := kernel.NewUUID()
	cmd, err := commands.NewCreateStandardCommand(
		standardID, body.Code, body.Name, body.Category,
		body.StandardValue, body.UpperLimit, body.LowerLimit, body.Unit,
		applicableType, body.Description, body.Active,
	)
	if err != nil {
		return badRequest(ctx, "Invalid standard data: "+err.Error())
	}

	if handleErr := s.handlers.CreateStandard.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: standardID})
}

// GetStandards handles GET /api/v1/standards - lists inspection standards.
func (s *Server) GetStandards(ctx echo.Context) error {
	query := queries.NewGetStandardsQuery()

	standards, err := s.handlers.GetStandards.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, standards)
}

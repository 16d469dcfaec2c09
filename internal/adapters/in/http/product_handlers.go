package http

import (
	"net/http"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewProduct is the request body for product registration.
type NewProduct struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Processes   []NewProductProcess `json:"processes"`
}

// NewProductProcess is one routing step of a new product.
type NewProductProcess struct {
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
}

// CreateProduct handles POST /api/v1/products - registers a product with its
// routing.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processes := make([]commands.ProcessInput, len(body.Processes))
	for i, process := range body.Processes {
		processes[i] = commands.ProcessInput{
			Name:     process.Name,
			Sequence: process.Sequence,
		}
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, body.Code, body.Name, body.Description, processes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID})
}

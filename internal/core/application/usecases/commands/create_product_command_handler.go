package commands

import (
	"context"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for product
// registration, building the routing from the supplied steps.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Builds the product aggregate with its routing and persists it in a single
// transaction.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	prod, err := product.NewProduct(command.ProductID(), command.Code(), command.Name(), command.Description())
	if err != nil {
		return err
	}

	for _, input := range command.Processes() {
		process, processErr := product.NewProcess(kernel.NewUUID(), input.Name, input.Sequence)
		if processErr != nil {
			return processErr
		}

		if processErr = prod.AddProcess(process); processErr != nil {
			return processErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, prod); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"mestrack/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler handles the business logic for work order
// planning. The referenced product must exist.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work order planning.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work order creation command.
// Verifies the product exists, then persists the order in PLANNED status.
func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, command CreateWorkOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, command.ProductID()); err != nil {
		return err
	}

	order, err := workorder.NewWorkOrder(
		command.WorkOrderID(), command.ProductID(), command.Quantity(),
		command.PlannedStartDate(), command.PlannedEndDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

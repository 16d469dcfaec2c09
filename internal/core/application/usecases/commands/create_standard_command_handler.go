package commands

import (
	"context"

	"mestrack/internal/core/domain/model/inspection"
)

// CreateStandardCommandHandler handles inspection standard registration.
type CreateStandardCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewCreateStandardCommandHandler creates a handler for standard registration.
func NewCreateStandardCommandHandler(uowFactory InspectionUoWFactory) CreateStandardCommandHandler {
	return CreateStandardCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the standard creation command.
func (h CreateStandardCommandHandler) Handle(ctx context.Context, command CreateStandardCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	standard, err := inspection.NewStandard(
		command.StandardID(), command.Code(), command.Name(), command.Category(),
		command.StandardValue(), command.UpperLimit(), command.LowerLimit(), command.Unit(),
		command.ApplicableType(), command.Description(), command.Active(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InspectionStandardRepository().Add(ctx, standard); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

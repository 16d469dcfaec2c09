package commands

import (
	"context"

	"mestrack/internal/core/domain/model/equipment"
)

// CreateEquipmentCommandHandler handles equipment registration.
type CreateEquipmentCommandHandler struct {
	uowFactory EquipmentUoWFactory
}

// NewCreateEquipmentCommandHandler creates a handler for equipment registration.
func NewCreateEquipmentCommandHandler(uowFactory EquipmentUoWFactory) CreateEquipmentCommandHandler {
	return CreateEquipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the equipment creation command.
func (h CreateEquipmentCommandHandler) Handle(ctx context.Context, command CreateEquipmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	machine, err := equipment.NewEquipment(
		command.EquipmentID(), command.Name(), command.Location(),
		command.EquipmentType(), command.Sequence(),
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

	if err = uow.EquipmentRepository().Add(ctx, machine); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

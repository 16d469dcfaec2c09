package commands

import (
	"context"
	"time"
)

// UpdateLotStatusCommandHandler handles lot lifecycle status changes and the
// timestamp side effects of entering IN_PROGRESS or COMPLETED.
type UpdateLotStatusCommandHandler struct {
	uowFactory LotUoWFactory
}

// NewUpdateLotStatusCommandHandler creates a handler for lot status changes.
func NewUpdateLotStatusCommandHandler(uowFactory LotUoWFactory) UpdateLotStatusCommandHandler {
	return UpdateLotStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot status change command.
func (h UpdateLotStatusCommandHandler) Handle(ctx context.Context, command UpdateLotStatusCommand) error {
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

	lotRepo := uow.LotRepository()

	trackedLot, err := lotRepo.Get(ctx, command.LotID())
	if err != nil {
		return err
	}

	if err = trackedLot.SetStatus(command.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = lotRepo.Update(ctx, trackedLot); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

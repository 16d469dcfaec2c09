package commands

import (
	"context"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/lot"
)

// AddLotHistoryCommandHandler handles lot history recording. A lot still in
// CREATED status moves to IN_PROGRESS when its first history entry arrives.
type AddLotHistoryCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewAddLotHistoryCommandHandler creates a handler for lot history recording.
func NewAddLotHistoryCommandHandler(uowFactory TrackingUoWFactory) AddLotHistoryCommandHandler {
	return AddLotHistoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot history command.
// Verifies the lot, process and equipment all exist, appends the immutable
// history record and applies the automatic status transition.
func (h AddLotHistoryCommandHandler) Handle(ctx context.Context, command AddLotHistoryCommand) error {
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

	if _, err = uow.ProductRepository().GetProcess(ctx, command.ProcessID()); err != nil {
		return err
	}

	if _, err = uow.EquipmentRepository().Get(ctx, command.EquipmentID()); err != nil {
		return err
	}

	now := time.Now().UTC()

	history, err := lot.NewHistory(
		kernel.NewUUID(), trackedLot.ID(), command.ProcessID(), command.EquipmentID(),
		command.InputQuantity(), command.OutputQuantity(), command.DefectQuantity(),
		command.Result(), command.Operator(), command.Remarks(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.LotHistoryRepository().Add(ctx, history); err != nil {
		return err
	}

	trackedLot.HistoryAppended(now)

	if err = lotRepo.Update(ctx, trackedLot); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

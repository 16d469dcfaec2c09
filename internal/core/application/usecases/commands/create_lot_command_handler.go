package commands

import (
	"context"
	"errors"
	"time"

	"mestrack/internal/core/domain/model/lot"
	"mestrack/internal/pkg/errs"
)

// CreateLotCommandHandler handles the business logic for lot creation.
// Assigns the next daily lot number inside the transaction: the number is
// derived from the count of lots created since local midnight, and a unique
// constraint on the lot number backs the count against races. A creator
// that loses the race recounts and retries once in a fresh transaction.
type CreateLotCommandHandler struct {
	uowFactory LotUoWFactory
}

// NewCreateLotCommandHandler creates a handler for lot creation.
func NewCreateLotCommandHandler(uowFactory LotUoWFactory) CreateLotCommandHandler {
	return CreateLotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot creation command.
// Verifies the product and optional work order exist, assigns the next lot
// number for today, and persists the lot in CREATED status.
func (h CreateLotCommandHandler) Handle(ctx context.Context, command CreateLotCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.create(ctx, command)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		// Lost the daily numbering race; recount and try once more.
		err = h.create(ctx, command)
	}

	return err
}

func (h CreateLotCommandHandler) create(ctx context.Context, command CreateLotCommand) error {
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

	if command.WorkOrderID() != nil {
		if _, err := uow.WorkOrderRepository().Get(ctx, *command.WorkOrderID()); err != nil {
			return err
		}
	}

	now := time.Now()
	lotRepo := uow.LotRepository()

	createdToday, err := lotRepo.CountCreatedSince(ctx, lot.StartOfDay(now))
	if err != nil {
		return err
	}

	newLot, err := lot.NewLot(
		command.LotID(), lot.NextNumber(now, createdToday),
		command.ProductID(), command.WorkOrderID(),
		command.Quantity(), command.Remarks(), now.UTC(),
	)
	if err != nil {
		return err
	}

	if err = lotRepo.Add(ctx, newLot); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

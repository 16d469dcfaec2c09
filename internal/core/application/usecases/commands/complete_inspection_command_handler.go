package commands

import (
	"context"
	"time"
)

// CompleteInspectionCommandHandler handles inspection completion. The
// aggregate enforces one-shot completion and recomputes the passed and
// failed counts from its item results; the inspection row is locked for
// the transaction so concurrent completions serialize and the second one
// sees the completed status.
type CompleteInspectionCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewCompleteInspectionCommandHandler creates a handler for inspection completion.
func NewCompleteInspectionCommandHandler(uowFactory InspectionUoWFactory) CompleteInspectionCommandHandler {
	return CompleteInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection completion command.
func (h CompleteInspectionCommandHandler) Handle(ctx context.Context, command CompleteInspectionCommand) error {
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

	inspectionRepo := uow.InspectionRepository()

	insp, err := inspectionRepo.GetForUpdate(ctx, command.InspectionID())
	if err != nil {
		return err
	}

	if err = insp.Complete(command.Result(), time.Now().UTC()); err != nil {
		return err
	}

	if err = inspectionRepo.Update(ctx, insp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

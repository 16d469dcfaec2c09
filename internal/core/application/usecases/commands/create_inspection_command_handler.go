package commands

import (
	"context"
	"errors"
	"time"

	"mestrack/internal/core/domain/model/inspection"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// CreateInspectionCommandHandler handles the business logic for opening a
// quality inspection. Each measurement item is bound to an inspection
// standard, copying the standard value and rendered tolerance at creation
// time so later standard edits do not rewrite past inspections. A creator
// that loses the daily numbering race recounts and retries once in a
// fresh transaction.
type CreateInspectionCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewCreateInspectionCommandHandler creates a handler for inspection creation.
func NewCreateInspectionCommandHandler(uowFactory InspectionUoWFactory) CreateInspectionCommandHandler {
	return CreateInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection creation command.
// Verifies the lot and every referenced standard exist, assigns the next
// inspection number for today, and persists the inspection in PENDING status.
func (h CreateInspectionCommandHandler) Handle(ctx context.Context, command CreateInspectionCommand) error {
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

func (h CreateInspectionCommandHandler) create(ctx context.Context, command CreateInspectionCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.LotRepository().Get(ctx, command.LotID()); err != nil {
		return err
	}

	now := time.Now()
	inspectionRepo := uow.InspectionRepository()

	createdToday, err := inspectionRepo.CountCreatedSince(ctx, startOfDay(now))
	if err != nil {
		return err
	}

	insp, err := inspection.NewInspection(
		command.InspectionID(), inspection.NextNumber(now, createdToday),
		command.LotID(), command.ProcessID(), command.Type(),
		command.SampleSize(), command.Inspector(), command.Remarks(), now.UTC(),
	)
	if err != nil {
		return err
	}

	standardRepo := uow.InspectionStandardRepository()
	for _, input := range command.Items() {
		standard, standardErr := standardRepo.Get(ctx, input.StandardID)
		if standardErr != nil {
			return standardErr
		}

		item, itemErr := inspection.NewItem(
			kernel.NewUUID(), insp.ID(), standard.ID(),
			input.MeasuredValue, standard.StandardValue(), standard.Tolerance(),
			input.Result, input.Remarks,
		)
		if itemErr != nil {
			return itemErr
		}

		if itemErr = insp.AddItem(item); itemErr != nil {
			return itemErr
		}
	}

	if err = inspectionRepo.Add(ctx, insp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

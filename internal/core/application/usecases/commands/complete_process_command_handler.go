package commands

import (
	"context"
	"fmt"
	"math"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/workorder"
	"mestrack/internal/core/domain/services"
	"mestrack/internal/core/ports"
)

// CompleteProcessCommandHandler orchestrates process completion for a work
// order: sequence validation, the quality gate decision and progress
// recording all happen inside one transaction. The work order row is locked
// for the duration, so concurrent completions for the same order serialize
// and each sees the results of the previous one.
//
// A rejected completion is itself committed: the work order moves to REJECTED
// and an alert is published, but no work result is recorded and the operation
// fails with a DefectRateExceededError.
type CompleteProcessCommandHandler struct {
	uowFactory  ProcessingUoWFactory
	notifier    ports.Notifier
	qualityGate services.QualityGate
}

// NewCompleteProcessCommandHandler creates a handler for process completion.
// Requires a ProcessingUoWFactory for transactional persistence, a notifier
// for progress and alert events, and the quality gate to apply.
func NewCompleteProcessCommandHandler(
	uowFactory ProcessingUoWFactory,
	notifier ports.Notifier,
	qualityGate services.QualityGate,
) CompleteProcessCommandHandler {
	return CompleteProcessCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		qualityGate: qualityGate,
	}
}

// Handle processes the completion command.
// Validates the work order is active and the process is the next routing
// step, applies the quality gate, then either records the work result and
// derived status or rejects the work order.
func (h CompleteProcessCommandHandler) Handle(ctx context.Context, command CompleteProcessCommand) error {
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

	workOrderRepo := uow.WorkOrderRepository()

	order, err := workOrderRepo.GetForUpdate(ctx, command.WorkOrderID())
	if err != nil {
		return err
	}

	if err = order.Status().ValidateCompleteProcess(); err != nil {
		return err
	}

	prod, err := uow.ProductRepository().Get(ctx, order.ProductID())
	if err != nil {
		return err
	}

	resultRepo := uow.WorkResultRepository()
	completedCount, err := resultRepo.CountForWorkOrder(ctx, order.ID())
	if err != nil {
		return err
	}

	routing := prod.Routing()
	if err = services.NewRoutingSequence().Validate(routing, completedCount, command.ProcessID()); err != nil {
		return err
	}

	accepted, rate := h.qualityGate.Evaluate(command.GoodQty(), command.BadQty())
	if !accepted {
		return h.reject(ctx, uow, order, rate)
	}

	now := time.Now().UTC()

	result, err := workorder.NewWorkResult(
		kernel.NewUUID(), order.ID(), command.ProcessID(),
		command.GoodQty(), command.BadQty(), now,
	)
	if err != nil {
		return err
	}

	if err = resultRepo.Add(ctx, result); err != nil {
		return err
	}

	if err = order.RecordProgress(completedCount+1, len(routing), now); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyWorkProgress(ctx, ports.WorkProgressEvent{
		WorkOrderID:        order.ID().String(),
		ProductName:        prod.Name(),
		Status:             order.Status().String(),
		TotalProcesses:     len(routing),
		CompletedProcesses: completedCount + 1,
		ProgressPercentage: progressPercentage(completedCount+1, len(routing)),
	})

	return nil
}

// reject commits the REJECTED status, publishes an alert and fails the
// operation. The rejection must survive even though the completion fails.
func (h CompleteProcessCommandHandler) reject(
	ctx context.Context,
	uow ProcessingUoW,
	order *workorder.WorkOrder,
	rate float64,
) error {
	if err := order.Reject(); err != nil {
		return err
	}

	if err := uow.WorkOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	gateErr := &services.DefectRateExceededError{Rate: rate, Threshold: h.qualityGate.Threshold()}

	h.notifier.NotifyAlert(ctx, ports.AlertSeverityError,
		fmt.Sprintf("work order %s rejected: %s", order.ID(), gateErr))

	return gateErr
}

func progressPercentage(completedCount, totalProcesses int) float64 {
	if totalProcesses == 0 {
		return 0.0
	}
	percentage := float64(completedCount) / float64(totalProcesses) * 100
	return math.Round(percentage*100) / 100
}

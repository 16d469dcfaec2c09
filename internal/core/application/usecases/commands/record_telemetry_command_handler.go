package commands

import (
	"context"
	"fmt"
	"time"

	"mestrack/internal/core/domain/model/equipment"
	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/ports"
)

// RecordTelemetryCommandHandler handles telemetry ingestion: the sample is
// persisted, the equipment's current status follows the sample, subscribers
// get an equipment update, and an ALARM status additionally raises an alert.
type RecordTelemetryCommandHandler struct {
	uowFactory EquipmentUoWFactory
	notifier   ports.Notifier
}

// NewRecordTelemetryCommandHandler creates a handler for telemetry ingestion.
func NewRecordTelemetryCommandHandler(uowFactory EquipmentUoWFactory, notifier ports.Notifier) RecordTelemetryCommandHandler {
	return RecordTelemetryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the telemetry command.
func (h RecordTelemetryCommandHandler) Handle(ctx context.Context, command RecordTelemetryCommand) error {
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

	equipmentRepo := uow.EquipmentRepository()

	machine, err := equipmentRepo.Get(ctx, command.EquipmentID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	sample, err := equipment.NewTelemetry(
		kernel.NewUUID(), machine.ID(), command.Status(),
		command.Temperature(), command.ProductionSpeed(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.TelemetryRepository().Add(ctx, sample); err != nil {
		return err
	}

	if err = machine.SetStatus(command.Status()); err != nil {
		return err
	}

	if err = equipmentRepo.Update(ctx, machine); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	temperature := sample.Temperature()
	speed := sample.ProductionSpeed()
	recordedAt := sample.RecordedAt()
	h.notifier.NotifyEquipmentUpdate(ctx, ports.EquipmentStatusEvent{
		EquipmentID:     machine.ID().String(),
		EquipmentName:   machine.Name(),
		Location:        machine.Location(),
		Status:          machine.Status().String(),
		Temperature:     &temperature,
		ProductionSpeed: &speed,
		RecordedAt:      &recordedAt,
	})

	if command.Status() == equipment.Alarm {
		h.notifier.NotifyAlert(ctx, ports.AlertSeverityWarning,
			fmt.Sprintf("equipment %s reported ALARM at %s", machine.Name(), machine.Location()))
	}

	return nil
}

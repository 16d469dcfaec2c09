package jobs

import (
	"context"
	"log/slog"
	"math/rand"

	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/model/equipment"

	"github.com/robfig/cron/v3"
)

// EquipmentSimulatorJob emits synthetic telemetry for every registered
// machine. Deployments without a plant data connection enable it to keep the
// dashboard and equipment views alive; real installations leave it off and
// feed the telemetry endpoint instead.
//
// Samples are drawn every five seconds. Most machines report RUN with a
// temperature in the normal band; a small fraction report IDLE, STOP or
// ALARM so the monitoring paths stay exercised.
type EquipmentSimulatorJob struct {
	recordHandler commands.RecordTelemetryCommandHandler
	listHandler   queries.GetEquipmentQueryHandler
	cron          *cron.Cron
	rand          *rand.Rand
	logger        *slog.Logger
}

// NewEquipmentSimulatorJob creates a job that records random telemetry for
// all registered equipment.
func NewEquipmentSimulatorJob(
	recordHandler commands.RecordTelemetryCommandHandler,
	listHandler queries.GetEquipmentQueryHandler,
	r *rand.Rand,
	logger *slog.Logger,
) *EquipmentSimulatorJob {
	return &EquipmentSimulatorJob{
		recordHandler: recordHandler,
		listHandler:   listHandler,
		cron:          cron.New(cron.WithSeconds()),
		rand:          r,
		logger:        logger.With("component", "equipment_simulator_job"),
	}
}

// Start begins the simulator job to run every five seconds.
func (j *EquipmentSimulatorJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		machines, listErr := j.listHandler.Handle(ctx, queries.NewGetEquipmentQuery())
		if listErr != nil {
			j.logger.ErrorContext(ctx, "Equipment simulator job failed to list equipment", "error", listErr)
			return
		}

		for _, machine := range machines {
			cmd, cmdErr := commands.NewRecordTelemetryCommand(
				machine.EquipmentID, j.sampleStatus(), j.sampleTemperature(), j.sampleSpeed(),
			)
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Equipment simulator job built invalid telemetry",
					"equipmentId", machine.EquipmentID.String(), "error", cmdErr)
				continue
			}

			if handleErr := j.recordHandler.Handle(ctx, cmd); handleErr != nil {
				j.logger.ErrorContext(ctx, "Equipment simulator job failed to record telemetry",
					"equipmentId", machine.EquipmentID.String(), "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Equipment simulator job started (running every 5 seconds)")
	return nil
}

// Stop stops the simulator job.
func (j *EquipmentSimulatorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Equipment simulator job stopped")
}

func (j *EquipmentSimulatorJob) sampleStatus() equipment.Status {
	draw := j.rand.Float64()
	switch {
	case draw < 0.70:
		return equipment.Run
	case draw < 0.85:
		return equipment.Idle
	case draw < 0.95:
		return equipment.Stop
	default:
		return equipment.Alarm
	}
}

// sampleTemperature draws from [55,85), the band a healthy line runs in.
func (j *EquipmentSimulatorJob) sampleTemperature() float64 {
	return 55.0 + j.rand.Float64()*30.0
}

// sampleSpeed draws units per hour from [80,120).
func (j *EquipmentSimulatorJob) sampleSpeed() int {
	return 80 + j.rand.Intn(40)
}

package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardBroadcastJob *DashboardBroadcastJob
	equipmentSimulatorJob *EquipmentSimulatorJob
}

// NewJobManager creates a new job manager. The simulator job may be nil when
// telemetry simulation is disabled; the broadcast job is always required.
func NewJobManager(
	dashboardBroadcastJob *DashboardBroadcastJob,
	equipmentSimulatorJob *EquipmentSimulatorJob,
) *JobManager {
	return &JobManager{
		dashboardBroadcastJob: dashboardBroadcastJob,
		equipmentSimulatorJob: equipmentSimulatorJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard broadcast job: %w", err)
	}

	if jm.equipmentSimulatorJob != nil {
		if err := jm.equipmentSimulatorJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.dashboardBroadcastJob.Stop()
			return fmt.Errorf("failed to start equipment simulator job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.equipmentSimulatorJob != nil {
		jm.equipmentSimulatorJob.Stop()
	}
	jm.dashboardBroadcastJob.Stop()
}

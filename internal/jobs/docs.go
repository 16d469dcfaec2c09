// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for production monitoring.
//
// # Available Jobs
//
// 1. DashboardBroadcastJob - Runs every 3 seconds to fold the dashboard snapshot and push it to websocket subscribers
// 2. EquipmentSimulatorJob - Runs every 5 seconds to record synthetic telemetry for all registered equipment (optional)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the constructed jobs
//	jobManager := jobs.NewJobManager(broadcastJob, simulatorJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The broadcast job uses the cron expression "*/3 * * * * *" and the
// simulator "*/5 * * * * *". The cadences keep dashboards close to real time
// without flooding slow subscribers.
//
// # Error Handling
//
// - Both jobs log failures and skip the tick; the next tick retries from scratch
// - The simulator continues with the remaining machines when one record fails
// - Failed job starts will stop any already running jobs
package jobs

package jobs

import (
	"context"
	"log/slog"

	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DashboardBroadcastJob periodically folds the dashboard snapshot and
// publishes it to websocket subscribers. Runs every three seconds so
// dashboards follow production without polling.
type DashboardBroadcastJob struct {
	handler  queries.GetDashboardQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardBroadcastJob creates a job that pushes dashboard snapshots
// through the notifier.
func NewDashboardBroadcastJob(
	handler queries.GetDashboardQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *DashboardBroadcastJob {
	return &DashboardBroadcastJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dashboard_broadcast_job"),
	}
}

// Start begins the dashboard broadcast job to run every three seconds.
func (j *DashboardBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/3 * * * * *", func() {
		ctx := context.Background()

		snapshot, handleErr := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Dashboard broadcast job failed", "error", handleErr)
			return
		}

		j.notifier.NotifyDashboard(ctx, snapshot)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard broadcast job started (running every 3 seconds)")
	return nil
}

// Stop stops the dashboard broadcast job.
func (j *DashboardBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard broadcast job stopped")
}

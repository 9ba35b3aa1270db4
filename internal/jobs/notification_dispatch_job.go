package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"fulfillment/internal/core/application/usecases/commands"
)

// NotificationDispatchJob drains the notification outbox on a schedule.
// Runs every five seconds; each run publishes one batch of pending entries.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewNotificationDispatchJob creates a job draining the notification outbox.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler, logger *zap.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "notification_dispatch_job")),
	}
}

// Start schedules the job to run every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.handler.Handle(ctx); err != nil {
			j.logger.Error("notification dispatch run failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("notification dispatch job stopped")
}

// Package jobs provides the scheduled background tasks of the coordinator,
// built on github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"fmt"

	"go.uber.org/zap"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationDispatchJob *NotificationDispatchJob
}

// NewJobManager creates a job manager with all required jobs wired.
func NewJobManager(
	dispatchHandler commands.DispatchNotificationsCommandHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		notificationDispatchJob: NewNotificationDispatchJob(dispatchHandler, logger),
	}
}

// StartAll starts every scheduled job, stopping already-started ones when a
// later job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.notificationDispatchJob.Stop()
}

// Package jobs provides scheduled background tasks for the rental system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, notifier, logger, time.Now)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueReminderJob *OverdueReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
	now func() time.Time,
) *JobManager {
	return &JobManager{
		overdueReminderJob: NewOverdueReminderJob(overdueOrdersHandler, notifier, logger, now),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueReminderJob.Stop()
}

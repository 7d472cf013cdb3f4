package jobs

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueReminderJob periodically finds picked-up orders whose rental period
// has ended and sends return reminders. Reminders are best-effort; the late
// fee itself is assessed at return time, not here.
type OverdueReminderJob struct {
	handler  queries.GetOverdueOrdersQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewOverdueReminderJob creates a job that chases overdue returns every hour.
func NewOverdueReminderJob(
	handler queries.GetOverdueOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
	now func() time.Time,
) *OverdueReminderJob {
	return &OverdueReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_reminder_job"),
		now:      now,
	}
}

// Start begins the overdue reminder job at the top of every hour.
func (j *OverdueReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueOrdersQuery(j.now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "failed to build overdue orders query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "overdue reminder job failed", "error", handleErr)
			return
		}

		for _, o := range overdue {
			if notifyErr := j.notifier.ReturnOverdue(ctx, o.OrderNumber, o.UserID); notifyErr != nil {
				j.logger.WarnContext(ctx, "failed to send overdue reminder",
					"order_number", o.OrderNumber, "error", notifyErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue reminder job started (running hourly)")
	return nil
}

// Stop stops the overdue reminder job.
func (j *OverdueReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue reminder job stopped")
}

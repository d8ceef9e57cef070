package jobs

import (
	"context"
	"log/slog"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob manages the scheduled sweep flagging pending invoices
// that passed their due date. Overdue invoices remain payable; the flag only
// changes how they are presented and chased.
type InvoiceOverdueJob struct {
	handler  commands.MarkOverdueInvoicesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInvoiceOverdueJob creates the overdue sweep with a standard five-field
// cron schedule, typically once per day.
func NewInvoiceOverdueJob(
	handler commands.MarkOverdueInvoicesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "invoice_overdue_job"),
	}
}

// Start begins the overdue sweep on its configured schedule.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueInvoicesCommand()

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invoice overdue sweep failed", "error", err)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Invoice overdue sweep flagged invoices", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice overdue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice overdue job stopped")
}

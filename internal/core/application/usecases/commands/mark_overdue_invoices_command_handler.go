package commands

import (
	"context"
	"time"
)

// MarkOverdueInvoicesCommandHandler flags every pending invoice past its due
// date as overdue. Overdue invoices remain payable; the flag only surfaces
// the debt in listings and reports.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for the overdue
// sweep.
func NewMarkOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the sweep and returns the number of invoices flagged.
func (h MarkOverdueInvoicesCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOverdueInvoicesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	pastDue, err := invoiceRepo.GetAllPendingPastDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, inv := range pastDue {
		if err = inv.MarkOverdue(); err != nil {
			return 0, err
		}
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pastDue), nil
}

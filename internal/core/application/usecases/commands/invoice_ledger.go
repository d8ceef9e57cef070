package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// amountToleranceCents is the largest amount drift the ledger treats as
// noise. Re-pricing an item within one cent of the billed amount is a no-op.
const amountToleranceCents = 1

// LedgerRequest describes the invoice the ledger should guarantee exists.
type LedgerRequest struct {
	// NaturalKey is the tracking code of the billed item. The ledger keys
	// idempotency on it: one item, one invoice, ever.
	NaturalKey  string
	Description string
	OwnerID     int64
	Amount      kernel.Money

	// FormatNumber renders the invoice number for a freshly issued invoice
	// from the ledger's next sequence value.
	FormatNumber func(seq int64) string

	// DueInDays is the payment term applied at issue time.
	DueInDays int

	// ShipmentID / ParcelID link the invoice to its billed item once that
	// item has a database identity. At most one is set.
	ShipmentID *int64
	ParcelID   *int64
}

// InvoiceLedger is the idempotent issue-or-correct operation behind every
// billing entry point. Callers run it inside their own transaction; the
// ledger locks the invoice row it touches.
//
// Outcomes:
//   - owner unresolvable: InvalidOwnerError, nothing written
//   - no invoice for the natural key: a Pending invoice is issued
//   - invoice exists and the amounts differ beyond tolerance: the amount is
//     corrected in place, status and dates untouched; settled invoices
//     refuse the correction with a ConflictError
//   - invoice exists and the amounts agree: no-op
//   - two transactions race on the same natural key: the loser's insert hits
//     the unique constraint and surfaces as a retryable ConflictError
type InvoiceLedger struct{}

// NewInvoiceLedger creates a new InvoiceLedger instance.
func NewInvoiceLedger() InvoiceLedger {
	return InvoiceLedger{}
}

// Upsert ensures the invoice described by req exists with the requested
// amount and returns it.
func (l InvoiceLedger) Upsert(
	ctx context.Context,
	invoiceRepo ports.InvoiceRepository,
	userRepo ports.UserRepository,
	req LedgerRequest,
	now time.Time,
) (*invoice.Invoice, error) {
	if _, err := userRepo.Get(ctx, req.OwnerID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewInvalidOwnerErrorWithCause(req.OwnerID, err)
		}
		return nil, err
	}

	existing, err := invoiceRepo.GetByNaturalKeyForUpdate(ctx, req.NaturalKey)
	if err == nil {
		return l.correct(ctx, invoiceRepo, existing, req)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	return l.issue(ctx, invoiceRepo, req, now)
}

func (l InvoiceLedger) issue(
	ctx context.Context,
	invoiceRepo ports.InvoiceRepository,
	req LedgerRequest,
	now time.Time,
) (*invoice.Invoice, error) {
	seq, err := invoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	inv, err := invoice.NewInvoice(
		req.FormatNumber(seq+1),
		req.NaturalKey,
		req.Description,
		req.Amount,
		req.OwnerID,
		now,
		now.AddDate(0, 0, req.DueInDays),
	)
	if err != nil {
		return nil, err
	}

	if err = l.link(inv, req); err != nil {
		return nil, err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (l InvoiceLedger) correct(
	ctx context.Context,
	invoiceRepo ports.InvoiceRepository,
	existing *invoice.Invoice,
	req LedgerRequest,
) (*invoice.Invoice, error) {
	changed := false

	if !existing.Amount().WithinCents(req.Amount, amountToleranceCents) {
		if err := existing.CorrectAmount(req.Amount); err != nil {
			return nil, err
		}
		changed = true
	}

	if l.needsLink(existing, req) {
		if err := l.link(existing, req); err != nil {
			return nil, err
		}
		changed = true
	}

	if !changed {
		return existing, nil
	}

	if err := invoiceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (l InvoiceLedger) needsLink(inv *invoice.Invoice, req LedgerRequest) bool {
	if req.ShipmentID != nil && inv.ShipmentID() == nil {
		return true
	}
	if req.ParcelID != nil && inv.ParcelID() == nil {
		return true
	}
	return false
}

func (l InvoiceLedger) link(inv *invoice.Invoice, req LedgerRequest) error {
	if req.ShipmentID != nil && inv.ShipmentID() == nil {
		if err := inv.AttachShipment(*req.ShipmentID); err != nil {
			return err
		}
	}
	if req.ParcelID != nil && inv.ParcelID() == nil {
		if err := inv.AttachParcel(*req.ParcelID); err != nil {
			return err
		}
	}
	return nil
}

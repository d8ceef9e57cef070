package queries

import (
	"context"

	"courier/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPendingPaymentsQueryHandler builds the verification worklist.
type GetPendingPaymentsQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetPendingPaymentsQueryHandler creates a handler for the worklist.
func NewGetPendingPaymentsQueryHandler(db *gorm.DB) GetPendingPaymentsQueryHandler {
	return GetPendingPaymentsQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns pending payments oldest first, so the longest-waiting
// client is decided first. Restricted to operators and admins.
func (h GetPendingPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPaymentsQuery,
) ([]PendingPaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.accessGuard.RequireElevated(query.Actor()); err != nil {
		return nil, err
	}

	payments := make([]PendingPaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.invoice_id,
			i.number,
			u.name,
			p.amount,
			p.method,
			p.reference,
			p.note,
			p.created_at
		FROM payments p
		JOIN invoices i ON i.id = p.invoice_id
		JOIN users u ON u.id = i.owner_id
		WHERE p.status = 'PENDING'
		ORDER BY p.created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PendingPaymentResponse
		err = rows.Scan(
			&resp.ID,
			&resp.InvoiceID,
			&resp.InvoiceNumber,
			&resp.PayerName,
			&resp.Amount,
			&resp.Method,
			&resp.Reference,
			&resp.Note,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

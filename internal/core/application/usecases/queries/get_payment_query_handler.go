package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentQueryHandler reads a payment joined with its invoice. The join
// is what makes the guard decision possible: payments carry no owner column,
// the invoice does.
type GetPaymentQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetPaymentQueryHandler creates a handler for payment lookups.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns the payment with its invoice number and derived owner.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	var resp GetPaymentQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.invoice_id,
			i.number,
			p.parcel_id,
			p.amount,
			p.method,
			p.status,
			p.reference,
			p.receipt,
			p.note,
			p.reason,
			i.owner_id,
			p.created_at
		FROM payments p
		JOIN invoices i ON i.id = p.invoice_id
		WHERE p.id = ?
	`, query.PaymentID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.InvoiceID,
		&resp.InvoiceNumber,
		&resp.ParcelID,
		&resp.Amount,
		&resp.Method,
		&resp.Status,
		&resp.Reference,
		&resp.Receipt,
		&resp.Note,
		&resp.Reason,
		&resp.OwnerID,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPaymentQueryResponse{}, errs.NewObjectNotFoundError("paymentId", query.PaymentID())
	}
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	if err = h.accessGuard.Authorize(query.Actor(), resp.OwnerID); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	return resp, nil
}

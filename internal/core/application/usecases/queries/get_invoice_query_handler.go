package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

const invoiceColumns = `
	id,
	number,
	natural_key,
	description,
	amount,
	status,
	issue_date,
	due_date,
	owner_id,
	shipment_id,
	parcel_id
`

func scanInvoice(row *sql.Row) (InvoiceResponse, error) {
	var resp InvoiceResponse
	err := row.Scan(
		&resp.ID,
		&resp.Number,
		&resp.NaturalKey,
		&resp.Description,
		&resp.Amount,
		&resp.Status,
		&resp.IssueDate,
		&resp.DueDate,
		&resp.OwnerID,
		&resp.ShipmentID,
		&resp.ParcelID,
	)
	return resp, err
}

// GetInvoiceQueryHandler reads an invoice row and applies the access guard
// against its owner.
type GetInvoiceQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetInvoiceQueryHandler creates a handler for invoice lookups.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns the invoice.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`,
		query.InvoiceID(),
	).Row()

	resp, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return InvoiceResponse{}, errs.NewObjectNotFoundError("invoiceId", query.InvoiceID())
	}
	if err != nil {
		return InvoiceResponse{}, err
	}

	if err = h.accessGuard.Authorize(query.Actor(), resp.OwnerID); err != nil {
		return InvoiceResponse{}, err
	}

	return resp, nil
}

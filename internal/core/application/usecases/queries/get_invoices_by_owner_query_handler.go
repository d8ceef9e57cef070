package queries

import (
	"context"

	"courier/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetInvoicesByOwnerQueryHandler lists invoices by owner. The guard runs
// before the read: a client asking for another owner's list is refused
// outright.
type GetInvoicesByOwnerQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetInvoicesByOwnerQueryHandler creates a handler for invoice listings.
func NewGetInvoicesByOwnerQueryHandler(db *gorm.DB) GetInvoicesByOwnerQueryHandler {
	return GetInvoicesByOwnerQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns the owner's invoices, newest first.
func (h GetInvoicesByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicesByOwnerQuery,
) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.accessGuard.Authorize(query.Actor(), query.OwnerID()); err != nil {
		return nil, err
	}

	invoices := make([]InvoiceResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+invoiceColumns+` FROM invoices WHERE owner_id = ? ORDER BY issue_date DESC, id DESC`,
		query.OwnerID(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp InvoiceResponse
		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

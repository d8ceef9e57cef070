package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
//
// The ForUpdate variants take a row lock for the duration of the enclosing
// transaction. The ledger and the settlement workflow use them so two
// concurrent requests for the same invoice serialize instead of both reading
// the pre-image.
type InvoiceRepository interface {
	// Add persists a new invoice and assigns its database identity.
	// A duplicate invoice number or natural key surfaces as a conflict.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its identifier.
	Get(ctx context.Context, id int64) (*invoice.Invoice, error)

	// GetForUpdate retrieves an invoice by its identifier, locking the row.
	GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error)

	// GetByNaturalKeyForUpdate retrieves the invoice billing the item with
	// the given tracking code, locking the row.
	GetByNaturalKeyForUpdate(ctx context.Context, naturalKey string) (*invoice.Invoice, error)

	// GetAllPendingPastDue retrieves all pending invoices whose due date
	// precedes the given time.
	GetAllPendingPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error)

	// Count returns the number of invoices ever issued. The ledger derives
	// the next invoice number from it; the unique constraint on the number
	// column catches the rare collision under concurrency.
	Count(ctx context.Context) (int64, error)
}

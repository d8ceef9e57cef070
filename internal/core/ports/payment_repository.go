package ports

import (
	"context"

	"courier/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment and assigns its database identity.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its identifier.
	Get(ctx context.Context, id int64) (*payment.Payment, error)

	// Delete removes a payment. Handlers only delete pending payments.
	Delete(ctx context.Context, id int64) error
}

// Package invoicerepo implements the invoice repository over GORM. The
// invoice number and the natural key each carry a unique constraint; together
// with row locking on the lookup paths they keep the ledger idempotent under
// concurrent upserts.
package invoicerepo

import (
	"time"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. Status is stored as its string name.
type InvoiceDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Number      string          `gorm:"uniqueIndex;not null"`
	NaturalKey  string          `gorm:"uniqueIndex;not null"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"index;not null"`
	IssueDate   time.Time       `gorm:"not null"`
	DueDate     time.Time       `gorm:"index;not null"`
	OwnerID     int64           `gorm:"index;not null"`
	ShipmentID  *int64          `gorm:"index"`
	ParcelID    *int64          `gorm:"index"`
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:          aggregate.ID(),
		Number:      aggregate.Number(),
		NaturalKey:  aggregate.NaturalKey(),
		Description: aggregate.Description(),
		Amount:      aggregate.Amount().Decimal(),
		Status:      aggregate.Status().String(),
		IssueDate:   aggregate.IssueDate(),
		DueDate:     aggregate.DueDate(),
		OwnerID:     aggregate.OwnerID(),
		ShipmentID:  aggregate.ShipmentID(),
		ParcelID:    aggregate.ParcelID(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		dto.ID,
		dto.Number,
		dto.NaturalKey,
		dto.Description,
		amount,
		status,
		dto.OwnerID,
		dto.IssueDate,
		dto.DueDate,
		dto.ShipmentID,
		dto.ParcelID,
	)
}

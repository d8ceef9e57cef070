// Package paymentrepo implements the payment repository over GORM.
package paymentrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Method and status are stored as their string names.
type PaymentDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	InvoiceID int64           `gorm:"index;not null"`
	ParcelID  *int64          `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method    string          `gorm:"not null"`
	Status    string          `gorm:"index;not null"`
	Reference string
	Receipt   string `gorm:"uniqueIndex;not null"`
	Note      string
	Reason    string
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        aggregate.ID(),
		InvoiceID: aggregate.InvoiceID(),
		ParcelID:  aggregate.ParcelID(),
		Amount:    aggregate.Amount().Decimal(),
		Method:    aggregate.Method().String(),
		Status:    aggregate.Status().String(),
		Reference: aggregate.Reference(),
		Receipt:   aggregate.Receipt(),
		Note:      aggregate.Note(),
		Reason:    aggregate.Reason(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		dto.ID,
		dto.InvoiceID,
		dto.ParcelID,
		amount,
		method,
		status,
		dto.Reference,
		dto.Receipt,
		dto.Note,
		dto.Reason,
		dto.CreatedAt,
	)
}

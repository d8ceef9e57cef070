// Package shipmentrepo implements the shipment repository over GORM. The
// recipient snapshot is flattened into the shipments table and written only
// once, on insert.
package shipmentrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status is stored as its string name.
type ShipmentDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	TrackingCode     string          `gorm:"uniqueIndex;not null"`
	Description      string          `gorm:"not null"`
	WeightLbs        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeclaredValue    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           string          `gorm:"index;not null"`
	RecipientName    string          `gorm:"not null"`
	RecipientCity    string          `gorm:"not null"`
	RecipientAddress string          `gorm:"not null"`
	RecipientPhone   string
	OwnerID          int64     `gorm:"index;not null"`
	CreatedAt        time.Time `gorm:"not null"`
	DeliveredAt      *time.Time
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	recipient := aggregate.Recipient()
	return ShipmentDTO{
		ID:               aggregate.ID(),
		TrackingCode:     aggregate.TrackingCode(),
		Description:      aggregate.Description(),
		WeightLbs:        aggregate.WeightLbs(),
		DeclaredValue:    aggregate.DeclaredValue(),
		Cost:             aggregate.Cost().Decimal(),
		Status:           aggregate.Status().String(),
		RecipientName:    recipient.Name(),
		RecipientCity:    recipient.City(),
		RecipientAddress: recipient.Address(),
		RecipientPhone:   recipient.Phone(),
		OwnerID:          aggregate.OwnerID(),
		CreatedAt:        aggregate.CreatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	recipient, err := shipment.NewRecipient(
		dto.RecipientName,
		dto.RecipientCity,
		dto.RecipientAddress,
		dto.RecipientPhone,
	)
	if err != nil {
		return nil, err
	}

	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		dto.ID,
		dto.TrackingCode,
		dto.Description,
		dto.WeightLbs,
		dto.DeclaredValue,
		cost,
		status,
		recipient,
		dto.OwnerID,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

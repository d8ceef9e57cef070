// Package parcelrepo implements the parcel repository over GORM, mapping
// between the parcel aggregate and its relational representation.
package parcelrepo

import (
	"time"

	"courier/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Status is stored as its string name.
type ParcelDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	TrackingCode  string          `gorm:"uniqueIndex;not null"`
	Description   string          `gorm:"not null"`
	WeightLbs     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeclaredValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Domestic      bool            `gorm:"not null"`
	Status        string          `gorm:"index;not null"`
	OwnerID       int64           `gorm:"index;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:            aggregate.ID(),
		TrackingCode:  aggregate.TrackingCode(),
		Description:   aggregate.Description(),
		WeightLbs:     aggregate.WeightLbs(),
		DeclaredValue: aggregate.DeclaredValue(),
		Domestic:      aggregate.Domestic(),
		Status:        aggregate.Status().String(),
		OwnerID:       aggregate.OwnerID(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		dto.ID,
		dto.TrackingCode,
		dto.Description,
		dto.WeightLbs,
		dto.DeclaredValue,
		dto.Domestic,
		status,
		dto.OwnerID,
		dto.CreatedAt,
	)
}

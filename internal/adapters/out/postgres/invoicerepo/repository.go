package invoicerepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice and assigns the database identity back to the
// aggregate. A duplicate number or natural key surfaces as a conflict; the
// ledger treats it as a retryable race.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"invoice number or natural key already taken", err,
			)
		}
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AssignID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice to the database.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("amount", "status", "shipment_id", "parcel_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an invoice by ID with a FOR UPDATE row lock held
// until the enclosing transaction ends.
func (r *GormInvoiceRepository) GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNaturalKeyForUpdate retrieves the invoice billing the item with the
// given tracking code, holding a FOR UPDATE row lock.
func (r *GormInvoiceRepository) GetByNaturalKeyForUpdate(ctx context.Context, naturalKey string) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "natural_key = ?", naturalKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("naturalKey", naturalKey)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingPastDue retrieves all pending invoices whose due date precedes
// the given time.
func (r *GormInvoiceRepository) GetAllPendingPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", invoice.StatusPending.String(), now).
		Order("due_date ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// Count returns the number of invoices ever issued.
func (r *GormInvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

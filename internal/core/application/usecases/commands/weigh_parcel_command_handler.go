package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/services"
)

// WeighParcelCommandHandler handles warehouse weigh-ins. It records the
// measured weight on the parcel, prices it, and drives the invoice ledger:
// first weigh-in issues the parcel's invoice, a re-weigh corrects it.
//
// The whole operation is one transaction. If the ledger refuses (settled
// invoice, concurrent duplicate) the weigh-in rolls back with it.
type WeighParcelCommandHandler struct {
	uowFactory  BillingUoWFactory
	accessGuard services.AccessGuard
	pricing     services.PricingCalculator
	ledger      InvoiceLedger
}

// NewWeighParcelCommandHandler creates a handler for weigh-in operations.
func NewWeighParcelCommandHandler(uowFactory BillingUoWFactory) WeighParcelCommandHandler {
	return WeighParcelCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
		pricing:     services.NewPricingCalculator(),
		ledger:      NewInvoiceLedger(),
	}
}

// Handle processes the weigh-in and returns the computed cost breakdown.
// Restricted to operators and admins.
func (h WeighParcelCommandHandler) Handle(
	ctx context.Context,
	cmd WeighParcelCommand,
) (services.CostBreakdown, error) {
	if err := cmd.Validate(); err != nil {
		return services.CostBreakdown{}, err
	}
	if err := h.accessGuard.RequireElevated(cmd.Actor()); err != nil {
		return services.CostBreakdown{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.CostBreakdown{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	weighed, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return services.CostBreakdown{}, err
	}

	if err = weighed.RecordWeighIn(cmd.WeightLbs(), cmd.DeclaredValue()); err != nil {
		return services.CostBreakdown{}, err
	}

	breakdown, err := h.pricing.ComputeCost(weighed.WeightLbs(), weighed.DeclaredValue(), weighed.Domestic())
	if err != nil {
		return services.CostBreakdown{}, err
	}

	if err = parcelRepo.Update(ctx, weighed); err != nil {
		return services.CostBreakdown{}, err
	}

	parcelID := weighed.ID()
	_, err = h.ledger.Upsert(ctx, uow.InvoiceRepository(), uow.UserRepository(), LedgerRequest{
		NaturalKey:   weighed.TrackingCode(),
		Description:  fmt.Sprintf("Parcel %s handling and freight", weighed.TrackingCode()),
		OwnerID:      weighed.OwnerID(),
		Amount:       breakdown.Total,
		FormatNumber: parcelInvoiceNumber,
		DueInDays:    paymentTermDays,
		ParcelID:     &parcelID,
	}, time.Now())
	if err != nil {
		return services.CostBreakdown{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.CostBreakdown{}, err
	}

	return breakdown, nil
}

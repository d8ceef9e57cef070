package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/parcel"
)

// PreAlertParcelCommandHandler handles parcel pre-alerts. The parcel is
// owned by the acting client; no invoice exists until the parcel is weighed.
type PreAlertParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewPreAlertParcelCommandHandler creates a handler for pre-alert operations.
func NewPreAlertParcelCommandHandler(uowFactory ParcelUoWFactory) PreAlertParcelCommandHandler {
	return PreAlertParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the pre-alerted parcel and returns it with its assigned
// identity.
func (h PreAlertParcelCommandHandler) Handle(
	ctx context.Context,
	cmd PreAlertParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.TrackingCode(),
		cmd.Description(),
		cmd.DeclaredValue(),
		cmd.Domestic(),
		cmd.Actor().ID(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}

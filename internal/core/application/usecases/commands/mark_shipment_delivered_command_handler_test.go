package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkShipmentDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shp := testShipmentAtOrigin(t, 11)
	require.NoError(t, shp.Dispatch())

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(11)).Return(shp, nil).Once(),
		shipmentRepo.On("Update", ctx, shp).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkShipmentDeliveredCommandHandler(shipmentUoWFactory{factory})
	cmd, err := commands.NewMarkShipmentDeliveredCommand(operatorActor(t), 11)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, shipment.StatusDelivered, shp.Status())
	require.NotNil(t, shp.DeliveredAt())

	uow.AssertExpectations(t)
}

func TestMarkShipmentDeliveredCommandHandler_Handle_RequiresElevatedRole(t *testing.T) {
	factory := new(MockUoWFactory)

	handler := commands.NewMarkShipmentDeliveredCommandHandler(shipmentUoWFactory{factory})
	cmd, err := commands.NewMarkShipmentDeliveredCommand(clientActor(t, testOwnerID), 11)
	require.NoError(t, err)

	err = handler.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

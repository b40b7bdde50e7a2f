package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCmd(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		geoPoint(t, 0, 0), geoPoint(t, 0, 0.05), "books",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCmd(t)
	candidate := onlineRider(t, 0, 0.001)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	riders := new(MockRiderDirectory)
	uow := new(MockDispatchUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("RiderDirectory").Return(riders)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		offerRepo.On("GetAllForOrder", mock.Anything, cmd.OrderID()).Return([]*offer.Offer{}, nil).Once(),
		riders.On("GetAvailable", mock.Anything, []kernel.UUID{}).Return([]*rider.Rider{candidate}, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Assigned && o.OfferExpiresAt() != nil
		})).Return(nil).Once(),
		offerRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *offer.Offer) bool {
			return o.RiderID().IsEqual(candidate.ID()) && o.Status() == offer.Offered
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOfferNotifier)
	notifier.On("NotifyOfferCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	riders.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoRidersCancelsImmediately(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCmd(t)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	riders := new(MockRiderDirectory)
	uow := new(MockDispatchUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("RiderDirectory").Return(riders)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		offerRepo.On("GetAllForOrder", mock.Anything, cmd.OrderID()).Return([]*offer.Offer{}, nil).Once(),
		riders.On("GetAvailable", mock.Anything, []kernel.UUID{}).Return([]*rider.Rider{}, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Cancelled && o.OfferExpiresAt() == nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOfferNotifier)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "NotifyOfferCreated", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	riders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockDispatchUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockOfferNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCmd(t)

	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockOfferNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCmd(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockOfferNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotifyFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCmd(t)
	candidate := onlineRider(t, 0, 0.001)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	riders := new(MockRiderDirectory)
	uow := new(MockDispatchUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("RiderDirectory").Return(riders)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	offerRepo.On("GetAllForOrder", mock.Anything, mock.Anything).Return([]*offer.Offer{}, nil).Once()
	offerRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	riders.On("GetAvailable", mock.Anything, mock.Anything).Return([]*rider.Rider{candidate}, nil).Once()

	notifier := new(MockOfferNotifier)
	notifier.On("NotifyOfferCreated", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

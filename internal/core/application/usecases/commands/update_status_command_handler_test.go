package commands_test

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, event *notification.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, event *notification.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnprocessed(
	ctx context.Context, limit int,
) ([]*notification.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Event), args.Error(1)
}

func (m *MockOutboxRepository) DeleteProcessedBefore(
	ctx context.Context, cutoff time.Time,
) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockLifecycleUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

func TestUpdateStatusCommandHandler_Handle_TransitionWritesEvent(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	droneID := kernel.NewUUID()
	cmd, err := commands.NewUpdateStatusCommand(
		deliveryID, delivery.AcceptedCenter, &droneID, nil)
	require.NoError(t, err)

	del := pendingDelivery(t, deliveryID)

	deliveryRepo := new(MockDeliveryRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, deliveryID).Return(del, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, del).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
			return e.Delivery().IsEqual(deliveryID) && e.Status() == delivery.AcceptedCenter
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, delivery.AcceptedCenter, result.Status)
	require.NotNil(t, del.Drone())
	assert.True(t, del.Drone().IsEqual(droneID))

	deliveryRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_SameStatusSkipsEvent(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewUpdateStatusCommand(deliveryID, delivery.Pending, nil, nil)
	require.NoError(t, err)

	del := pendingDelivery(t, deliveryID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, deliveryID).Return(del, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, del).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, delivery.Pending, result.Status)

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_MarkValidated(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	validatedAt := time.Now()
	cmd, err := commands.NewUpdateStatusCommand(
		deliveryID, delivery.Delivered, nil, &validatedAt)
	require.NoError(t, err)

	del := pendingDelivery(t, deliveryID)

	deliveryRepo := new(MockDeliveryRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, deliveryID).Return(del, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, del).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, del.ValidatedAt())
	assert.True(t, del.ValidatedAt().Equal(validatedAt))
}

func TestUpdateStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewUpdateStatusCommand(deliveryID, delivery.Failed, nil, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateStatusCommand{} // not constructed properly
	factory := new(MockLifecycleUoWFactory)
	h := commands.NewUpdateStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateStatusCommandIsNotConstructed)
}

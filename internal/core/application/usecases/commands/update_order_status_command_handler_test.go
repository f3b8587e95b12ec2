package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusOrderRepository struct{ mock.Mock }

func (m *MockStatusOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockStatusOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) GetByMobile(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) UpdateStatus(ctx context.Context, id kernel.OrderID, target order.Status, allowedFrom []order.Status) error {
	args := m.Called(ctx, id, target, allowedFrom)
	return args.Error(0)
}
func (m *MockStatusOrderRepository) UpdatePaymentProof(_ context.Context, _ kernel.OrderID, _ order.PaymentProof, _ order.Status) error {
	return errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) UpdateTransport(ctx context.Context, id kernel.OrderID, transport order.Transport) error {
	args := m.Called(ctx, id, transport)
	return args.Error(0)
}
func (m *MockStatusOrderRepository) Delete(_ context.Context, _ kernel.OrderID) error {
	return errors.New("not implemented in mock")
}

type MockStatusUoW struct{ mock.Mock }

func (m *MockStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func confirmedOrderFixture(t *testing.T) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(time.Now(), 5)
	require.NoError(t, err)
	item, err := order.NewLineItem("Turmeric Powder", 50, 2)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Asha Patel", "9876543210", "", "12 Market Road", "380001")
	require.NoError(t, err)
	o, err := order.NewOrder(id, []order.LineItem{item}, 100, customer, time.Now())
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()
	existing := confirmedOrderFixture(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), order.PaymentVerified)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.PaymentVerified,
			order.TransitionSources(order.PaymentVerified)).Return(nil).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_TransportAssignment(t *testing.T) {
	ctx := t.Context()
	existing := confirmedOrderFixture(t)
	cmd, err := commands.NewBookOrderCommand(existing.ID(), "Roadways Express", "LR-4471")
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateTransport", mock.Anything, existing.ID(),
			order.Transport{Carrier: "Roadways Express", LRNumber: "LR-4471"}).Return(nil).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	existing := confirmedOrderFixture(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	transitionErr := errors.New("invalid transition")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.Confirmed,
			order.TransitionSources(order.Confirmed)).Return(transitionErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, slog.Default())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, transitionErr)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewBookOrderCommand_MissingTransportFields(t *testing.T) {
	existing := confirmedOrderFixture(t)
	_, err := commands.NewBookOrderCommand(existing.ID(), "", "LR-4471")
	require.Error(t, err)
	_, err = commands.NewBookOrderCommand(existing.ID(), "Roadways Express", "")
	require.Error(t, err)
}

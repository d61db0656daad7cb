package commands_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOpenOrderCommand(t *testing.T) {
	cmd, err := commands.NewOpenOrderCommand(kernel.MustNewPhone("0501234567"), true)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.Shipping())

	_, err = commands.NewOpenOrderCommand(kernel.Phone{}, true)
	require.Error(t, err)
}

func TestOpenOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone := kernel.MustNewPhone("0501234567")
	cmd, _ := commands.NewOpenOrderCommand(phone, true)
	placedAt := time.Date(2024, 5, 14, 19, 30, 0, 0, time.UTC)
	known, _ := customer.NewCustomer(phone, "John Doe")
	pool := []*agent.Agent{
		mustAgent("+972542562628", "Avi"),
		mustAgent("+972544969475", "Dana"),
		mustAgent("+972505852703", "Moshe"),
	}

	customers := new(MockCustomerRepository)
	agents := new(MockAgentRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, phone).Return(known, nil).Once(),
		uow.On("AgentRepository").Return(agents).Once(),
		agents.On("GetAll", ctx).Return(pool, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("NextNumber", ctx).Return(order.Number(42), nil).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Number() == 42 && o.IsShipping() && o.Customer().IsEqual(phone) && o.PlacedAt().Equal(placedAt)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenOrderCommandHandler(factory, services.NewAgentDispatcher(rand.NewPCG(1, 2)),
		func() time.Time { return placedAt })
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Number(42), result.Number)
	assert.Contains(t, pool, result.Agent)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOpenOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	phone := kernel.MustNewPhone("0501234567")
	cmd, _ := commands.NewOpenOrderCommand(phone, true)

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, phone).Return(nil, errs.NewObjectNotFoundError("phone", phone)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenOrderCommandHandler(factory, services.NewAgentDispatcher(nil), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestOpenOrderCommandHandler_Handle_NoAgents(t *testing.T) {
	ctx := t.Context()
	phone := kernel.MustNewPhone("0501234567")
	cmd, _ := commands.NewOpenOrderCommand(phone, true)
	known, _ := customer.NewCustomer(phone, "John Doe")

	customers := new(MockCustomerRepository)
	agents := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, phone).Return(known, nil).Once(),
		uow.On("AgentRepository").Return(agents).Once(),
		agents.On("GetAll", ctx).Return([]*agent.Agent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenOrderCommandHandler(factory, services.NewAgentDispatcher(nil), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrAgentNotFound)
	uow.AssertExpectations(t)
}

func TestOpenOrderCommandHandler_Handle_AllocationError(t *testing.T) {
	ctx := t.Context()
	phone := kernel.MustNewPhone("0501234567")
	cmd, _ := commands.NewOpenOrderCommand(phone, false)
	known, _ := customer.NewCustomer(phone, "John Doe")

	customers := new(MockCustomerRepository)
	agents := new(MockAgentRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, phone).Return(known, nil).Once(),
		uow.On("AgentRepository").Return(agents).Once(),
		agents.On("GetAll", ctx).Return([]*agent.Agent{mustAgent("+972542562628", "Avi")}, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("NextNumber", ctx).Return(order.Number(0), errs.NewStoreUnavailableError("next order number", errors.New("conn reset"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenOrderCommandHandler(factory, services.NewAgentDispatcher(nil), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestOpenOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewOpenOrderCommand(kernel.MustNewPhone("0501234567"), true)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewOpenOrderCommandHandler(factory, services.NewAgentDispatcher(nil), nil)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

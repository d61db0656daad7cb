package commands_test

import (
	"context"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextNumber(ctx context.Context) (order.Number, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.Number), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) AddLine(ctx context.Context, line order.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteLine(ctx context.Context, number order.Number, dish int64) (bool, error) {
	args := m.Called(ctx, number, dish)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Lines(_ context.Context, _ order.Number) ([]order.CartItem, error) {
	return nil, nil
}

func (m *MockOrderRepository) Total(_ context.Context, _ order.Number) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (m *MockOrderRepository) CountForCustomer(_ context.Context, _ kernel.Phone) (int, error) {
	return 0, nil
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Save(ctx context.Context, d *catalog.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListByType(_ context.Context, _ string) ([]*catalog.Dish, error) {
	return nil, nil
}

func (m *MockCatalogRepository) GetByName(ctx context.Context, name string) (*catalog.Dish, error) {
	args := m.Called(ctx, name)
	d, _ := args.Get(0).(*catalog.Dish)
	return d, args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, phone kernel.Phone) (*agent.Agent, error) {
	args := m.Called(ctx, phone)
	a, _ := args.Get(0).(*agent.Agent)
	return a, args.Error(1)
}

func (m *MockAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	agents, _ := args.Get(0).([]*agent.Agent)
	return agents, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderLineUoWFactory struct{ mock.Mock }

func (m *MockOrderLineUoWFactory) Create() commands.OrderLineUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLineUoW)
}

func mustDish(number int64, name string, price string) *catalog.Dish {
	d, err := catalog.NewDish(number, name, "Pad Thai", kernel.MustNewPrice(price), catalog.NewTags(catalog.Rice))
	if err != nil {
		panic(err)
	}
	return d
}

func mustAgent(phone, name string) *agent.Agent {
	a, err := agent.NewAgent(kernel.MustNewPhone(phone), name)
	if err != nil {
		panic(err)
	}
	return a
}

package queries_test

import (
	"context"
	"time"

	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var aviPhone = kernel.MustNewPhone("+972542562628")

// storeSuite runs query handlers against a fresh in-memory store per test.
type storeSuite struct {
	suite.Suite
	store *memory.Store
}

func (s *storeSuite) SetupTest() {
	s.store = memory.NewStore()
	ctx := context.Background()

	avi, err := agent.NewAgent(aviPhone, "Avi")
	s.Require().NoError(err)
	s.Require().NoError(memory.NewAgentRepository(s.store).Save(ctx, avi))

	menu := []struct {
		number int64
		name   string
		kind   string
		price  string
		tags   catalog.Tags
	}{
		{1, "Pad Thai", "Pad Thai", "58", catalog.NewTags(catalog.Chicken, catalog.Rice)},
		{2, "Pad See Ew", "Pad Thai", "56", catalog.NewTags(catalog.Beef, catalog.Rice)},
		{3, "Tom Yum", "Soups", "32", catalog.NewTags(catalog.Spicy, catalog.SeaFood)},
		{4, "Tofu salad", "Salads", "44", catalog.NewTags(catalog.Tofu, catalog.Vegan)},
	}
	repo := memory.NewCatalogRepository(s.store)
	for _, d := range menu {
		dish, dishErr := catalog.NewDish(d.number, d.name, d.kind, kernel.MustNewPrice(d.price), d.tags)
		s.Require().NoError(dishErr)
		s.Require().NoError(repo.Save(ctx, dish))
	}
}

func (s *storeSuite) customer(raw, name string) kernel.Phone {
	phone := kernel.MustNewPhone(raw)
	c, err := customer.NewCustomer(phone, name)
	s.Require().NoError(err)
	s.Require().NoError(memory.NewCustomerRepository(s.store).Upsert(context.Background(), c))
	return phone
}

// order places an order for phone with quantities keyed by dish number.
func (s *storeSuite) order(phone kernel.Phone, at time.Time, lines map[int64]int) order.Number {
	ctx := context.Background()
	repo := memory.NewOrderRepository(s.store)

	number, err := repo.NextNumber(ctx)
	s.Require().NoError(err)
	o, err := order.NewOrder(number, true, phone, aviPhone, at)
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(ctx, o))

	for dish := int64(1); dish <= 4; dish++ {
		quantity, ok := lines[dish]
		if !ok {
			continue
		}
		line, lineErr := order.NewLine(number, dish, quantity)
		s.Require().NoError(lineErr)
		s.Require().NoError(repo.AddLine(ctx, line))
	}
	return number
}

type MockSalesReader struct {
	mock.Mock
}

func (m *MockSalesReader) DailyIncome(ctx context.Context, from, to time.Time) ([]ports.DailyIncome, error) {
	args := m.Called(ctx, from, to)
	rows, _ := args.Get(0).([]ports.DailyIncome)
	return rows, args.Error(1)
}

func (m *MockSalesReader) IncomeByDishType(ctx context.Context) ([]ports.TypeIncome, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]ports.TypeIncome)
	return rows, args.Error(1)
}

func (m *MockSalesReader) DishSales(ctx context.Context, from, to time.Time) ([]ports.DishSales, error) {
	args := m.Called(ctx, from, to)
	rows, _ := args.Get(0).([]ports.DishSales)
	return rows, args.Error(1)
}

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderbot/internal/adapters/out/postgres/catalogrepo"
	"orderbot/internal/adapters/out/postgres/customerrepo"
	"orderbot/internal/adapters/out/postgres/orderrepo"
	"orderbot/internal/adapters/out/postgres/pgtest"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	johnPhone = kernel.MustNewPhone("0501234567")
	aviPhone  = kernel.MustNewPhone("+972542562628")
	placedAt  = time.Date(2024, 5, 14, 19, 30, 0, 0, time.UTC)
)

// OrderRepositoryIntegrationTestSuite verifies order and line persistence
// against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)

	ctx := context.Background()
	john, err := customer.NewCustomer(johnPhone, "John Doe")
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.database.DB).Upsert(ctx, john))

	dishes := catalogrepo.NewGormCatalogRepository(suite.database.DB)
	for _, d := range []struct {
		number int64
		name   string
		price  string
	}{
		{1, "Pad Thai", "58"},
		{2, "Tom Yum", "32"},
		{3, "Green Curry", "62.5"},
	} {
		dish, dishErr := catalog.NewDish(d.number, d.name, "Pad Thai", kernel.MustNewPrice(d.price), catalog.NewTags())
		suite.Require().NoError(dishErr)
		suite.Require().NoError(dishes.Save(ctx, dish))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) open() order.Number {
	ctx := context.Background()
	number, err := suite.repository.NextNumber(ctx)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, true, johnPhone, aviPhone, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	return number
}

func (suite *OrderRepositoryIntegrationTestSuite) add(number order.Number, dish int64, quantity int) error {
	line, err := order.NewLine(number, dish, quantity)
	suite.Require().NoError(err)
	return suite.repository.AddLine(context.Background(), line)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumber_Sequential() {
	first := suite.open()
	second := suite.open()

	suite.Equal(order.Number(1), first)
	suite.Equal(order.Number(2), second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownCustomer() {
	ctx := context.Background()
	number, err := suite.repository.NextNumber(ctx)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, true, kernel.MustNewPhone("0529999999"), aviPhone, placedAt)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 7)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Remark() {
	ctx := context.Background()
	number := suite.open()

	o, err := suite.repository.Get(ctx, number)
	suite.Require().NoError(err)
	_, ok := o.Remark()
	suite.False(ok)

	suite.Require().NoError(o.SetRemark("ring twice"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, number)
	suite.Require().NoError(err)
	remark, ok := stored.Remark()
	suite.True(ok)
	suite.Equal("ring twice", remark)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	o, err := order.NewOrder(99, true, johnPhone, aviPhone, placedAt)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine_SumsQuantities() {
	ctx := context.Background()
	number := suite.open()

	suite.Require().NoError(suite.add(number, 2, 1))
	suite.Require().NoError(suite.add(number, 1, 2))
	suite.Require().NoError(suite.add(number, 2, 3))

	items, err := suite.repository.Lines(ctx, number)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Tom Yum", items[0].DishName)
	suite.Equal(4, items[0].Quantity)
	suite.Equal("Pad Thai", items[1].DishName)
	suite.Equal(2, items[1].Quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine_MergedQuantityOutOfRange() {
	ctx := context.Background()
	number := suite.open()
	suite.Require().NoError(suite.add(number, 1, 60))

	err := suite.add(number, 1, 40)

	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
	items, err := suite.repository.Lines(ctx, number)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(60, items[0].Quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine_UnknownOrderOrDish() {
	number := suite.open()

	suite.ErrorIs(suite.add(number, 42, 1), errs.ErrObjectNotFound)
	suite.ErrorIs(suite.add(number+1, 1, 1), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteLine() {
	ctx := context.Background()
	number := suite.open()
	suite.Require().NoError(suite.add(number, 1, 1))

	removed, err := suite.repository.DeleteLine(ctx, number, 1)
	suite.Require().NoError(err)
	suite.True(removed)

	removed, err = suite.repository.DeleteLine(ctx, number, 1)
	suite.Require().NoError(err)
	suite.False(removed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTotal() {
	ctx := context.Background()
	number := suite.open()

	_, ok, err := suite.repository.Total(ctx, number)
	suite.Require().NoError(err)
	suite.False(ok, "no lines yet")

	suite.Require().NoError(suite.add(number, 1, 2))
	suite.Require().NoError(suite.add(number, 3, 1))

	total, ok, err := suite.repository.Total(ctx, number)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.True(total.Equal(decimal.RequireFromString("178.5")), "got %s", total)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountForCustomer() {
	ctx := context.Background()
	suite.open()
	suite.open()

	n, err := suite.repository.CountForCustomer(ctx, johnPhone)
	suite.Require().NoError(err)
	suite.Equal(2, n)

	n, err = suite.repository.CountForCustomer(ctx, aviPhone)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

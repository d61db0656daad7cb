package readmodel_test

import (
	"context"
	"testing"
	"time"

	"orderbot/internal/adapters/out/postgres/catalogrepo"
	"orderbot/internal/adapters/out/postgres/customerrepo"
	"orderbot/internal/adapters/out/postgres/orderrepo"
	"orderbot/internal/adapters/out/postgres/pgtest"
	"orderbot/internal/adapters/out/postgres/readmodel"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/domain/services/taste"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	johnPhone = kernel.MustNewPhone("0501234567")
	danaPhone = kernel.MustNewPhone("0529999999")
	aviPhone  = kernel.MustNewPhone("+972542562628")
	placedAt  = time.Date(2024, 5, 14, 19, 30, 0, 0, time.UTC)
)

// ReadModelIntegrationTestSuite checks the SQL aggregates behind
// recommendations and the back office.
type ReadModelIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	orders   *orderrepo.GormOrderRepository
	reader   *readmodel.GormReadModel
}

func (suite *ReadModelIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orders = orderrepo.NewGormOrderRepository(database.DB)
	suite.reader = readmodel.NewGormReadModel(database.DB)
}

func (suite *ReadModelIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	ctx := context.Background()

	customers := customerrepo.NewGormCustomerRepository(suite.database.DB)
	for _, c := range []struct {
		phone kernel.Phone
		name  string
	}{{johnPhone, "John Doe"}, {danaPhone, "Dana"}} {
		created, err := customer.NewCustomer(c.phone, c.name)
		suite.Require().NoError(err)
		suite.Require().NoError(customers.Upsert(ctx, created))
	}

	dishes := catalogrepo.NewGormCatalogRepository(suite.database.DB)
	for _, d := range []struct {
		number int64
		name   string
		kind   string
		price  string
		tags   catalog.Tags
	}{
		{1, "Pad Thai", "Pad Thai", "58", catalog.NewTags(catalog.Chicken, catalog.Rice)},
		{2, "Tom Yum", "Soups", "32", catalog.NewTags(catalog.Spicy, catalog.SeaFood)},
		{3, "Tofu salad", "Salads", "44", catalog.NewTags(catalog.Tofu, catalog.Vegan)},
	} {
		dish, err := catalog.NewDish(d.number, d.name, d.kind, kernel.MustNewPrice(d.price), d.tags)
		suite.Require().NoError(err)
		suite.Require().NoError(dishes.Save(ctx, dish))
	}
}

func (suite *ReadModelIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ReadModelIntegrationTestSuite) open(customerPhone kernel.Phone, at time.Time) order.Number {
	ctx := context.Background()
	number, err := suite.orders.NextNumber(ctx)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, true, customerPhone, aviPhone, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(ctx, o))
	return number
}

func (suite *ReadModelIntegrationTestSuite) add(number order.Number, dish int64, quantity int) {
	line, err := order.NewLine(number, dish, quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.AddLine(context.Background(), line))
}

func (suite *ReadModelIntegrationTestSuite) TestCustomerTasteTable() {
	number := suite.open(johnPhone, placedAt)
	suite.add(number, 1, 2)
	suite.add(number, 2, 1)
	suite.open(johnPhone, placedAt)

	table, err := suite.reader.CustomerTasteTable(context.Background())

	suite.Require().NoError(err)
	suite.Equal([]string{johnPhone.String()}, table.Customers())
	row, _ := table.Row(johnPhone.String())
	suite.InDelta(45.0, row[taste.PriceColumn], 1e-9)
	suite.InDelta(0.5, row[int(catalog.Chicken)+1], 1e-9)
	suite.InDelta(0.5, row[int(catalog.Spicy)+1], 1e-9)
	suite.InDelta(0.0, row[int(catalog.Vegan)+1], 1e-9)
}

func (suite *ReadModelIntegrationTestSuite) TestDishUsage() {
	ctx := context.Background()
	first := suite.open(johnPhone, placedAt)
	suite.add(first, 1, 2)
	second := suite.open(johnPhone, placedAt)
	suite.add(second, 1, 1)
	suite.add(second, 2, 1)
	suite.open(johnPhone, placedAt)
	danas := suite.open(danaPhone, placedAt)
	suite.add(danas, 3, 1)

	all, err := suite.reader.DishUsage(ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Pad Thai", all[0].Dish)
	suite.Equal(2, all[0].Lines)
	suite.Equal(3, all[0].Orders)
	suite.InDelta(2.0/3.0, all[0].Rating(), 1e-9)

	onlyDana, err := suite.reader.DishUsage(ctx, []string{danaPhone.String()})
	suite.Require().NoError(err)
	suite.Require().Len(onlyDana, 1)
	suite.Equal("Tofu salad", onlyDana[0].Dish)
	suite.Equal(1, onlyDana[0].Orders)

	none, err := suite.reader.DishUsage(ctx, []string{})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *ReadModelIntegrationTestSuite) TestSales() {
	ctx := context.Background()
	monday := time.Date(2024, 5, 13, 12, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	lastMonth := monday.AddDate(0, -1, 0)

	o1 := suite.open(johnPhone, monday)
	suite.add(o1, 1, 2)
	o2 := suite.open(johnPhone, tuesday)
	suite.add(o2, 2, 1)
	suite.add(o2, 1, 1)
	o3 := suite.open(johnPhone, lastMonth)
	suite.add(o3, 3, 5)
	suite.open(johnPhone, tuesday)

	daily, err := suite.reader.DailyIncome(ctx, monday.AddDate(0, 0, -1), tuesday.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Require().Len(daily, 2)
	suite.True(daily[0].Income.Equal(decimal.NewFromInt(116)))
	suite.True(daily[1].Income.Equal(decimal.NewFromInt(90)))

	byType, err := suite.reader.IncomeByDishType(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(byType, 3)
	suite.Equal("Salads", byType[0].DishType)
	suite.Equal("Pad Thai", byType[1].DishType)
	suite.True(byType[1].Income.Equal(decimal.NewFromInt(174)))

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sales, err := suite.reader.DishSales(ctx, from, from.AddDate(0, 1, 0))
	suite.Require().NoError(err)
	suite.Require().Len(sales, 2)
	suite.Equal("Pad Thai", sales[0].Dish)
	suite.Equal(3, sales[0].Quantity)
	suite.Equal("Tom Yum", sales[1].Dish)
}

func TestReadModelIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelIntegrationTestSuite))
}

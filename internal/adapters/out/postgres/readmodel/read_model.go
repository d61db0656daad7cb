// Package readmodel serves the recommendation and back-office reads straight from SQL.
// Orders without lines contribute nothing to any aggregate.
package readmodel

import (
	"context"
	"sort"
	"time"

	"orderbot/internal/adapters/out/postgres/pgerr"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services/taste"
	"orderbot/internal/core/ports"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReadModel implements TasteReader and SalesReader using GORM.
type GormReadModel struct {
	db *gorm.DB
}

// NewGormReadModel creates the read model over db.
func NewGormReadModel(db *gorm.DB) *GormReadModel {
	return &GormReadModel{db: db}
}

var (
	_ ports.TasteReader = (*GormReadModel)(nil)
	_ ports.SalesReader = (*GormReadModel)(nil)
)

// soldLines joins order lines with their orders and dishes.
func (m *GormReadModel) soldLines(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx).Table("order_lines AS l").
		Joins("JOIN orders AS o ON o.number = l.order_number").
		Joins("JOIN dishes AS d ON d.number = l.dish_number")
}

type historyRow struct {
	Customer string
	Price    decimal.Decimal
	Tags     pq.StringArray
}

// CustomerTasteTable builds one profile row per customer from every order line.
func (m *GormReadModel) CustomerTasteTable(ctx context.Context) (*taste.Table, error) {
	var rows []historyRow
	err := m.soldLines(ctx).
		Select("o.customer_phone AS customer, d.price AS price, d.tags AS tags").
		Order("l.id").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("fetch taste history", err)
	}

	history := make([]taste.HistoryLine, 0, len(rows))
	for _, row := range rows {
		tags, tagErr := catalog.ParseTags(row.Tags)
		if tagErr != nil {
			return nil, tagErr
		}
		history = append(history, taste.HistoryLine{
			Customer: row.Customer,
			Price:    row.Price.InexactFloat64(),
			Tags:     tags,
		})
	}
	return taste.BuildTable(history), nil
}

type usageRow struct {
	Customer string
	Dish     string
	Price    decimal.Decimal
	Lines    int
	Orders   int
}

// DishUsage counts lines per (customer, dish, price) next to each customer's
// order count. A nil customers slice means every customer.
func (m *GormReadModel) DishUsage(ctx context.Context, customers []string) ([]taste.Usage, error) {
	query := m.soldLines(ctx).
		Select(`o.customer_phone AS customer, d.name AS dish, d.price AS price,
			COUNT(*) AS lines, oc.orders AS orders`).
		Joins(`JOIN (SELECT customer_phone, COUNT(*) AS orders FROM orders GROUP BY customer_phone) AS oc
			ON oc.customer_phone = o.customer_phone`)
	if customers != nil {
		query = query.Where("o.customer_phone = ANY(?)", pq.Array(customers))
	}

	var rows []usageRow
	err := query.
		Group("o.customer_phone, d.name, d.price, oc.orders").
		Order("MIN(l.id)").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("fetch dish usage", err)
	}

	usages := make([]taste.Usage, 0, len(rows))
	for _, row := range rows {
		price, priceErr := kernel.NewPrice(row.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		usages = append(usages, taste.Usage{
			Customer: row.Customer,
			Dish:     row.Dish,
			Price:    price,
			Lines:    row.Lines,
			Orders:   row.Orders,
		})
	}
	return usages, nil
}

type orderIncomeRow struct {
	PlacedAt time.Time
	Income   decimal.Decimal
}

// DailyIncome buckets order income by calendar day in from's location.
func (m *GormReadModel) DailyIncome(ctx context.Context, from, to time.Time) ([]ports.DailyIncome, error) {
	var rows []orderIncomeRow
	err := m.soldLines(ctx).
		Select("o.placed_at AS placed_at, SUM(d.price * l.quantity) AS income").
		Where("o.placed_at >= ? AND o.placed_at < ?", from, to).
		Group("o.number, o.placed_at").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("fetch daily income", err)
	}

	loc := from.Location()
	byDay := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		t := row.PlacedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		byDay[day] = byDay[day].Add(row.Income)
	}

	out := make([]ports.DailyIncome, 0, len(byDay))
	for day, income := range byDay {
		out = append(out, ports.DailyIncome{Day: day, Income: income})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

type typeIncomeRow struct {
	DishType string
	Income   decimal.Decimal
}

// IncomeByDishType returns all-time income per menu section, highest first.
func (m *GormReadModel) IncomeByDishType(ctx context.Context) ([]ports.TypeIncome, error) {
	var rows []typeIncomeRow
	err := m.soldLines(ctx).
		Select("d.dish_type AS dish_type, SUM(d.price * l.quantity) AS income").
		Group("d.dish_type").
		Order("income DESC, d.dish_type").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("fetch income by dish type", err)
	}

	out := make([]ports.TypeIncome, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.TypeIncome{DishType: row.DishType, Income: row.Income})
	}
	return out, nil
}

type dishSalesRow struct {
	Dish     string
	Quantity int
	Income   decimal.Decimal
}

// DishSales returns every dish sold in [from, to), highest income first.
func (m *GormReadModel) DishSales(ctx context.Context, from, to time.Time) ([]ports.DishSales, error) {
	var rows []dishSalesRow
	err := m.soldLines(ctx).
		Select("d.name AS dish, SUM(l.quantity) AS quantity, SUM(d.price * l.quantity) AS income").
		Where("o.placed_at >= ? AND o.placed_at < ?", from, to).
		Group("d.name").
		Order("income DESC, d.name").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("fetch dish sales", err)
	}

	out := make([]ports.DishSales, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.DishSales{Dish: row.Dish, Quantity: row.Quantity, Income: row.Income})
	}
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services/taste"
	"orderbot/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ReadModel serves the recommendation and back-office reads.
type ReadModel struct {
	store *Store
}

// NewReadModel returns the read side of store.
func NewReadModel(store *Store) *ReadModel {
	return &ReadModel{store: store}
}

var (
	_ ports.TasteReader = (*ReadModel)(nil)
	_ ports.SalesReader = (*ReadModel)(nil)
)

// soldLine is an order line joined with its order and dish.
type soldLine struct {
	customer kernel.Phone
	placedAt time.Time
	dishName string
	dishType string
	price    kernel.Price
	quantity int
	tags     catalog.Tags
}

// joined returns every line whose order and dish both exist. Callers hold the read lock.
func (m *ReadModel) joined() []soldLine {
	out := make([]soldLine, 0, len(m.store.lines))
	for _, l := range m.store.lines {
		o, ok := m.store.orders[l.order]
		if !ok {
			continue
		}
		d, ok := m.store.dishes[l.dish]
		if !ok {
			continue
		}
		out = append(out, soldLine{
			customer: o.customer,
			placedAt: o.placedAt,
			dishName: d.Name(),
			dishType: d.Type(),
			price:    d.Price(),
			quantity: l.quantity,
			tags:     d.Tags(),
		})
	}
	return out
}

func (m *ReadModel) CustomerTasteTable(_ context.Context) (*taste.Table, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	lines := m.joined()
	history := make([]taste.HistoryLine, 0, len(lines))
	for _, l := range lines {
		history = append(history, taste.HistoryLine{
			Customer: l.customer.String(),
			Price:    l.price.Float64(),
			Tags:     l.tags,
		})
	}
	return taste.BuildTable(history), nil
}

func (m *ReadModel) DishUsage(_ context.Context, customers []string) ([]taste.Usage, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	var only map[string]bool
	if customers != nil {
		only = make(map[string]bool, len(customers))
		for _, c := range customers {
			only[c] = true
		}
	}

	orders := make(map[string]int)
	for _, o := range m.store.orders {
		orders[o.customer.String()]++
	}

	type key struct {
		customer string
		dish     string
		price    string
	}
	usage := make(map[key]*taste.Usage)
	var keys []key
	for _, l := range m.joined() {
		c := l.customer.String()
		if only != nil && !only[c] {
			continue
		}
		k := key{customer: c, dish: l.dishName, price: l.price.String()}
		u, ok := usage[k]
		if !ok {
			u = &taste.Usage{Customer: c, Dish: l.dishName, Price: l.price, Orders: orders[c]}
			usage[k] = u
			keys = append(keys, k)
		}
		u.Lines++
	}

	out := make([]taste.Usage, 0, len(keys))
	for _, k := range keys {
		out = append(out, *usage[k])
	}
	return out, nil
}

func (m *ReadModel) DailyIncome(_ context.Context, from, to time.Time) ([]ports.DailyIncome, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	loc := from.Location()
	byDay := make(map[time.Time]decimal.Decimal)
	for _, l := range m.joined() {
		if l.placedAt.Before(from) || !l.placedAt.Before(to) {
			continue
		}
		t := l.placedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		byDay[day] = byDay[day].Add(l.price.Times(l.quantity))
	}

	out := make([]ports.DailyIncome, 0, len(byDay))
	for day, income := range byDay {
		out = append(out, ports.DailyIncome{Day: day, Income: income})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (m *ReadModel) IncomeByDishType(_ context.Context) ([]ports.TypeIncome, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	byType := make(map[string]decimal.Decimal)
	for _, l := range m.joined() {
		byType[l.dishType] = byType[l.dishType].Add(l.price.Times(l.quantity))
	}

	out := make([]ports.TypeIncome, 0, len(byType))
	for t, income := range byType {
		out = append(out, ports.TypeIncome{DishType: t, Income: income})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Income.Cmp(out[j].Income); c != 0 {
			return c > 0
		}
		return out[i].DishType < out[j].DishType
	})
	return out, nil
}

func (m *ReadModel) DishSales(_ context.Context, from, to time.Time) ([]ports.DishSales, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	byDish := make(map[string]*ports.DishSales)
	for _, l := range m.joined() {
		if l.placedAt.Before(from) || !l.placedAt.Before(to) {
			continue
		}
		s, ok := byDish[l.dishName]
		if !ok {
			s = &ports.DishSales{Dish: l.dishName}
			byDish[l.dishName] = s
		}
		s.Quantity += l.quantity
		s.Income = s.Income.Add(l.price.Times(l.quantity))
	}

	out := make([]ports.DishSales, 0, len(byDish))
	for _, s := range byDish {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Income.Cmp(out[j].Income); c != 0 {
			return c > 0
		}
		return out[i].Dish < out[j].Dish
	})
	return out, nil
}

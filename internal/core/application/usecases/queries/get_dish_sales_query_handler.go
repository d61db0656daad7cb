package queries

import (
	"cmp"
	"context"
	"slices"
	"time"

	"orderbot/internal/core/ports"
)

// GetDishSalesQueryHandler builds the monthly sellers reports.
type GetDishSalesQueryHandler struct {
	sales ports.SalesReader
}

// NewGetDishSalesQueryHandler creates the handler.
func NewGetDishSalesQueryHandler(sales ports.SalesReader) GetDishSalesQueryHandler {
	return GetDishSalesQueryHandler{sales: sales}
}

// Handle returns up to SalesReportLimit dishes. Best sellers come highest income
// first, worst sellers lowest income first.
func (h GetDishSalesQueryHandler) Handle(ctx context.Context, query GetDishSalesQuery) ([]ports.DishSales, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := query.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	rows, err := h.sales.DishSales(ctx, from, to)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b ports.DishSales) int {
		if c := b.Income.Cmp(a.Income); c != 0 {
			return c
		}
		return cmp.Compare(a.Dish, b.Dish)
	})
	if query.Ranking() == WorstSellers {
		slices.Reverse(sorted)
	}

	if len(sorted) > SalesReportLimit {
		sorted = sorted[:SalesReportLimit]
	}
	if sorted == nil {
		sorted = []ports.DishSales{}
	}
	return sorted, nil
}

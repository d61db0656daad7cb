package queries

import (
	"context"
	"time"

	"orderbot/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetWeeklyIncomeQueryHandler builds the weekly income series.
type GetWeeklyIncomeQueryHandler struct {
	sales ports.SalesReader
}

// NewGetWeeklyIncomeQueryHandler creates the handler.
func NewGetWeeklyIncomeQueryHandler(sales ports.SalesReader) GetWeeklyIncomeQueryHandler {
	return GetWeeklyIncomeQueryHandler{sales: sales}
}

// Handle returns exactly WeekDays entries, oldest first. Days without sales are zero.
func (h GetWeeklyIncomeQueryHandler) Handle(ctx context.Context, query GetWeeklyIncomeQuery) ([]ports.DailyIncome, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := query.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(WeekDays - 1))
	to := today.AddDate(0, 0, 1)

	rows, err := h.sales.DailyIncome(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		key := r.Day.In(now.Location()).Format(time.DateOnly)
		byDay[key] = byDay[key].Add(r.Income)
	}

	series := make([]ports.DailyIncome, 0, WeekDays)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		series = append(series, ports.DailyIncome{
			Day:    day,
			Income: byDay[day.Format(time.DateOnly)],
		})
	}
	return series, nil
}

package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyIncome is the income of the orders placed on one day.
type DailyIncome struct {
	Day    time.Time
	Income decimal.Decimal
}

// TypeIncome is the all-time income of one menu section.
type TypeIncome struct {
	DishType string
	Income   decimal.Decimal
}

// DishSales is how much of one dish was sold and what it brought in.
type DishSales struct {
	Dish     string
	Quantity int
	Income   decimal.Decimal
}

// SalesReader provides the back-office aggregates. Orders without lines
// contribute nothing and never cause an error.
type SalesReader interface {
	// DailyIncome returns income per day for orders placed in [from, to), oldest first.
	DailyIncome(ctx context.Context, from, to time.Time) ([]DailyIncome, error)

	// IncomeByDishType returns all-time income per menu section, highest first.
	IncomeByDishType(ctx context.Context) ([]TypeIncome, error)

	// DishSales returns every dish sold in [from, to), highest income first.
	DishSales(ctx context.Context, from, to time.Time) ([]DishSales, error)
}

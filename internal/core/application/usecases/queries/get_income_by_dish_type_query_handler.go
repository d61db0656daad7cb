package queries

import (
	"context"

	"orderbot/internal/core/ports"
)

// GetIncomeByDishTypeQueryHandler reads income per menu section.
type GetIncomeByDishTypeQueryHandler struct {
	sales ports.SalesReader
}

// NewGetIncomeByDishTypeQueryHandler creates the handler.
func NewGetIncomeByDishTypeQueryHandler(sales ports.SalesReader) GetIncomeByDishTypeQueryHandler {
	return GetIncomeByDishTypeQueryHandler{sales: sales}
}

// Handle returns income per section, highest first. Empty history gives an empty slice.
func (h GetIncomeByDishTypeQueryHandler) Handle(
	ctx context.Context,
	query GetIncomeByDishTypeQuery,
) ([]ports.TypeIncome, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.sales.IncomeByDishType(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ports.TypeIncome{}
	}
	return rows, nil
}

package queries

import (
	"errors"

	"orderbot/internal/pkg/guard"
)

var (
	ErrGetIncomeByDishTypeQueryIsNotConstructed = errors.New(
		"GetIncomeByDishTypeQuery must be created via NewGetIncomeByDishTypeQuery constructor",
	)
)

// GetIncomeByDishTypeQuery asks for the income distribution across menu sections.
type GetIncomeByDishTypeQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncomeByDishTypeQuery creates the query.
func NewGetIncomeByDishTypeQuery() GetIncomeByDishTypeQuery {
	return GetIncomeByDishTypeQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncomeByDishTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetIncomeByDishTypeQueryIsNotConstructed)
}

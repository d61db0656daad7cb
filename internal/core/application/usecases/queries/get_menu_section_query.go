package queries

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrGetMenuSectionQueryIsNotConstructed = errors.New(
		"GetMenuSectionQuery must be created via NewGetMenuSectionQuery constructor",
	)
)

// GetMenuSectionQuery lists the dishes of one menu section.
type GetMenuSectionQuery struct {
	dishType string
	guard    guard.ConstructorGuard
}

// NewGetMenuSectionQuery creates the query for dishType.
func NewGetMenuSectionQuery(dishType string) (GetMenuSectionQuery, error) {
	dishType = strings.TrimSpace(dishType)
	if dishType == "" {
		return GetMenuSectionQuery{}, errs.NewValueIsRequiredError("dish type")
	}
	return GetMenuSectionQuery{dishType: dishType, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuSectionQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuSectionQueryIsNotConstructed)
}

// DishType returns the requested section.
func (q GetMenuSectionQuery) DishType() string {
	return q.dishType
}

// MenuItem is a dish as listed on a menu keyboard.
type MenuItem struct {
	Name  string
	Price kernel.Price
}

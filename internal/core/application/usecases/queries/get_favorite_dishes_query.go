package queries

import (
	"errors"

	"orderbot/internal/pkg/guard"
)

var (
	ErrGetFavoriteDishesQueryIsNotConstructed = errors.New(
		"GetFavoriteDishesQuery must be created via NewGetFavoriteDishesQuery constructor",
	)
)

// GetFavoriteDishesQuery asks for the most popular dishes among all customers.
type GetFavoriteDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFavoriteDishesQuery creates the query.
func NewGetFavoriteDishesQuery() GetFavoriteDishesQuery {
	return GetFavoriteDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFavoriteDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetFavoriteDishesQueryIsNotConstructed)
}

package queries

import (
	"context"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/ports"
)

// GetFavoriteDishesQueryHandler ranks dishes over the whole order history.
type GetFavoriteDishesQueryHandler struct {
	tastes ports.TasteReader
}

// NewGetFavoriteDishesQueryHandler creates the handler.
func NewGetFavoriteDishesQueryHandler(tastes ports.TasteReader) GetFavoriteDishesQueryHandler {
	return GetFavoriteDishesQueryHandler{tastes: tastes}
}

// Handle returns the global favorites; the result is the same for every caller.
func (h GetFavoriteDishesQueryHandler) Handle(
	ctx context.Context,
	query GetFavoriteDishesQuery,
) ([]catalog.Favorite, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return globalFavorites(ctx, h.tastes)
}

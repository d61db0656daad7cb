package queries

import (
	"context"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/services/taste"
	"orderbot/internal/core/ports"
)

// GetRecommendedDishesQueryHandler runs the taste pipeline for one customer.
type GetRecommendedDishesQueryHandler struct {
	orders ports.OrderRepository
	tastes ports.TasteReader
}

// NewGetRecommendedDishesQueryHandler creates the handler.
func NewGetRecommendedDishesQueryHandler(
	orders ports.OrderRepository,
	tastes ports.TasteReader,
) GetRecommendedDishesQueryHandler {
	return GetRecommendedDishesQueryHandler{orders: orders, tastes: tastes}
}

// Handle returns up to taste.FavoritesLimit favorites.
//
// A customer with fewer than NewCustomerOrderThreshold orders gets the global
// favorites without building any profile. Otherwise the favorites of the
// taste.PeerCount closest customers are ranked; no peers means no recommendation.
func (h GetRecommendedDishesQueryHandler) Handle(
	ctx context.Context,
	query GetRecommendedDishesQuery,
) ([]catalog.Favorite, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	count, err := h.orders.CountForCustomer(ctx, query.Customer())
	if err != nil {
		return nil, err
	}
	if count < NewCustomerOrderThreshold {
		return globalFavorites(ctx, h.tastes)
	}

	table, err := h.tastes.CustomerTasteTable(ctx)
	if err != nil {
		return nil, err
	}

	peers := taste.Peers(table, query.Customer().String(), taste.PeerCount)
	if len(peers) == 0 {
		return []catalog.Favorite{}, nil
	}

	usages, err := h.tastes.DishUsage(ctx, peers)
	if err != nil {
		return nil, err
	}
	return taste.Rank(usages, taste.FavoritesLimit), nil
}

func globalFavorites(ctx context.Context, tastes ports.TasteReader) ([]catalog.Favorite, error) {
	usages, err := tastes.DishUsage(ctx, nil)
	if err != nil {
		return nil, err
	}
	return taste.Rank(usages, taste.FavoritesLimit), nil
}

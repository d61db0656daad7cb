package ports

import (
	"context"

	"orderbot/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for the menu.
type CatalogRepository interface {
	// Save inserts or replaces a dish by number.
	Save(ctx context.Context, dish *catalog.Dish) error

	// ListByType returns the dishes of one menu section ordered by number.
	ListByType(ctx context.Context, dishType string) ([]*catalog.Dish, error)

	// GetByName resolves a dish by its unique name.
	GetByName(ctx context.Context, name string) (*catalog.Dish, error)
}

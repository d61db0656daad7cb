package queries

import (
	"context"

	"orderbot/internal/core/ports"
)

// GetMenuSectionQueryHandler reads menu sections from the catalog.
type GetMenuSectionQueryHandler struct {
	catalog ports.CatalogRepository
}

// NewGetMenuSectionQueryHandler creates the handler.
func NewGetMenuSectionQueryHandler(catalog ports.CatalogRepository) GetMenuSectionQueryHandler {
	return GetMenuSectionQueryHandler{catalog: catalog}
}

// Handle returns the section's dishes in catalog order. An unknown section is empty.
func (h GetMenuSectionQueryHandler) Handle(ctx context.Context, query GetMenuSectionQuery) ([]MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.catalog.ListByType(ctx, query.DishType())
	if err != nil {
		return nil, err
	}

	items := make([]MenuItem, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, MenuItem{Name: d.Name(), Price: d.Price()})
	}
	return items, nil
}

package queries

import (
	"context"

	"orderbot/internal/core/ports"
)

// GetCartQueryHandler assembles the cart from the order repository.
type GetCartQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetCartQueryHandler creates the handler.
func NewGetCartQueryHandler(orders ports.OrderRepository) GetCartQueryHandler {
	return GetCartQueryHandler{orders: orders}
}

// Handle returns the lines, their total and the order remark.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.Number())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items, err := h.orders.Lines(ctx, query.Number())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	total, ok, err := h.orders.Total(ctx, query.Number())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	remark, _ := o.Remark()
	return GetCartQueryResponse{
		Items:    items,
		Total:    total,
		HasTotal: ok,
		Remark:   remark,
	}, nil
}

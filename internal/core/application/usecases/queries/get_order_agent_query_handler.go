package queries

import (
	"context"

	"orderbot/internal/core/ports"
)

// GetOrderAgentQueryHandler resolves order → agent.
type GetOrderAgentQueryHandler struct {
	orders ports.OrderRepository
	agents ports.AgentRepository
}

// NewGetOrderAgentQueryHandler creates the handler.
func NewGetOrderAgentQueryHandler(orders ports.OrderRepository, agents ports.AgentRepository) GetOrderAgentQueryHandler {
	return GetOrderAgentQueryHandler{orders: orders, agents: agents}
}

// Handle returns the agent's name and phone. A missing order or agent surfaces as
// errs.ObjectNotFoundError.
func (h GetOrderAgentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAgentQuery,
) (GetOrderAgentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderAgentQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.Number())
	if err != nil {
		return GetOrderAgentQueryResponse{}, err
	}

	a, err := h.agents.Get(ctx, o.Agent())
	if err != nil {
		return GetOrderAgentQueryResponse{}, err
	}

	return GetOrderAgentQueryResponse{Name: a.Name(), Phone: a.Phone()}, nil
}

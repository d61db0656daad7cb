package commands

import (
	"context"
	"time"

	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/domain/services"
)

// OpenOrderResult is what the conversation needs to know about a new order.
type OpenOrderResult struct {
	Number order.Number
	Agent  *agent.Agent
}

// OpenOrderCommandHandler allocates an order number, assigns a delivery agent and
// persists the new order in one transaction.
//
// Example:
//
//	handler := NewOpenOrderCommandHandler(uowFactory, services.NewAgentDispatcher(nil), time.Now)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // The customer never shared a contact
//	}
type OpenOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *services.AgentDispatcher
	now        func() time.Time
}

// NewOpenOrderCommandHandler creates a handler for opening orders.
// A nil now defaults to time.Now.
func NewOpenOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher *services.AgentDispatcher,
	now func() time.Time,
) OpenOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return OpenOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		now:        now,
	}
}

// Handle opens the order. The customer must exist. Returns services.ErrAgentNotFound
// when no delivery staff is configured.
func (h OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) (OpenOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OpenOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.Customer()); err != nil {
		return OpenOrderResult{}, err
	}

	agents, err := uow.AgentRepository().GetAll(ctx)
	if err != nil {
		return OpenOrderResult{}, err
	}

	assigned, err := h.dispatcher.Dispatch(agents)
	if err != nil {
		return OpenOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return OpenOrderResult{}, err
	}

	o, err := order.NewOrder(number, cmd.Shipping(), cmd.Customer(), assigned.Phone(), h.now())
	if err != nil {
		return OpenOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return OpenOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenOrderResult{}, err
	}

	return OpenOrderResult{Number: number, Agent: assigned}, nil
}

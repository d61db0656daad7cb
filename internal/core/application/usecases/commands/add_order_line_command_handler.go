package commands

import (
	"context"

	"orderbot/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler resolves a dish by name and upserts its order line.
// A dish missing from the catalog surfaces as errs.ObjectNotFoundError.
type AddOrderLineCommandHandler struct {
	uowFactory OrderLineUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for adding order lines.
func NewAddOrderLineCommandHandler(uowFactory OrderLineUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the line. Adding a dish already in the order sums the quantities.
func (h AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dish, err := uow.CatalogRepository().GetByName(ctx, cmd.DishName())
	if err != nil {
		return err
	}

	line, err := order.NewLine(cmd.Number(), dish.Number(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().AddLine(ctx, line); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

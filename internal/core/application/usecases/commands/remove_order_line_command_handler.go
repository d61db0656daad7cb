package commands

import (
	"context"
	"errors"

	"orderbot/internal/pkg/errs"
)

// RemoveOrderLineCommandHandler deletes one order line.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderLineUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for removing order lines.
func NewRemoveOrderLineCommandHandler(uowFactory OrderLineUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line and reports whether there was one. A dish that is not in
// the order, or no longer in the catalog, is not an error: nothing changes and
// false is returned.
func (h RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dish, err := uow.CatalogRepository().GetByName(ctx, cmd.DishName())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	removed, err := uow.OrderRepository().DeleteLine(ctx, cmd.Number(), dish.Number())
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

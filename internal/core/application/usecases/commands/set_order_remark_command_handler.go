package commands

import (
	"context"
)

// SetOrderRemarkCommandHandler overwrites an order's remark.
type SetOrderRemarkCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderRemarkCommandHandler creates a handler for order remarks.
func NewSetOrderRemarkCommandHandler(uowFactory OrderUoWFactory) SetOrderRemarkCommandHandler {
	return SetOrderRemarkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its remark and persists it.
func (h SetOrderRemarkCommandHandler) Handle(ctx context.Context, cmd SetOrderRemarkCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if err = o.SetRemark(cmd.Text()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

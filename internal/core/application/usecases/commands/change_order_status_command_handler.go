package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a staff transition and persists it
// immediately. The order total is never touched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer ports.Authorizer
	policy     kernel.TransitionPolicy
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer ports.Authorizer,
	policy kernel.TransitionPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		policy:     policy,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectOrders, ports.ActionTransition); err != nil {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// DeleteMenuItemCommandHandler removes an item from the menu. Placed orders
// keep their lines and unit price snapshots.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	authorizer ports.Authorizer
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory, authorizer ports.Authorizer) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectMenu, ports.ActionManage); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	authorizer ports.Authorizer
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory, authorizer ports.Authorizer) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectMenu, ports.ActionManage); err != nil {
		return err
	}

	item, err := menu.NewItem(cmd.ItemID(), cmd.Name(), cmd.Description(), cmd.Category(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
	authorizer ports.Authorizer
}

func NewSetMenuItemAvailabilityCommandHandler(
	uowFactory MenuUoWFactory,
	authorizer ports.Authorizer,
) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *SetMenuItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMenuItemAvailabilityCommand) error {
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

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.SetAvailability(cmd.Available())

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

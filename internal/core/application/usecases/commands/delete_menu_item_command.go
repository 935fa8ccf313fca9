package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	itemID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(principal kernel.Principal, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(principal.Validate(), itemID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		principal: principal,
		itemID:    itemID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Principal() kernel.Principal {
	return c.principal
}

func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemAvailabilityCommand(
	principal kernel.Principal,
	itemID kernel.UUID,
	available bool,
) (SetMenuItemAvailabilityCommand, error) {
	if err := errors.Join(principal.Validate(), itemID.Validate()); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return SetMenuItemAvailabilityCommand{
		principal: principal,
		itemID:    itemID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetMenuItemAvailabilityCommand) Principal() kernel.Principal {
	return c.principal
}

func (c SetMenuItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}

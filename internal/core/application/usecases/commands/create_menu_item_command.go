package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish or drink to the menu. Field rules are
// enforced by menu.NewItem when the handler builds the item.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal   kernel.Principal
	itemID      kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	principal kernel.Principal,
	itemID kernel.UUID,
	name, description, category string,
	price kernel.Money,
) (CreateMenuItemCommand, error) {
	if err := errors.Join(principal.Validate(), itemID.Validate()); err != nil {
		return CreateMenuItemCommand{}, err
	}
	if err := price.Validate(); err != nil {
		return CreateMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	return CreateMenuItemCommand{
		principal:   principal,
		itemID:      itemID,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Principal() kernel.Principal {
	return c.principal
}

func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c CreateMenuItemCommand) Category() string {
	return c.category
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

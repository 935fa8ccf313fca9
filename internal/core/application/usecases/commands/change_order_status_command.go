package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to another status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   kernel.UUID
	status    order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	status order.Status,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		principal: principal,
		orderID:   orderID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Principal() kernel.Principal {
	return c.principal
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CartEntry is one raw line of a submitted cart. Entries are checked while
// the order is being built, not when the command is created, so a malformed
// entry takes the rollback path of placement.
type CartEntry struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderCommand is a customer's cart submission.
//
//	cmd, err := NewPlaceOrderCommand(principal, kernel.NewUUID(), "12 Main St", "", []CartEntry{
//	    {MenuItemID: pizzaID, Quantity: 2},
//	})
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	principal       kernel.Principal
	orderID         kernel.UUID
	deliveryAddress string
	notes           string
	cart            []CartEntry

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the caller and the order id. The cart may be empty.
func NewPlaceOrderCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	deliveryAddress, notes string,
	cart []CartEntry,
) (PlaceOrderCommand, error) {
	if err := errors.Join(principal.Validate(), orderID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		principal:       principal,
		orderID:         orderID,
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		notes:           strings.TrimSpace(notes),
		cart:            append([]CartEntry(nil), cart...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() kernel.Principal {
	return c.principal
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

// Cart returns the entries in submission order.
func (c PlaceOrderCommand) Cart() []CartEntry {
	return append([]CartEntry(nil), c.cart...)
}

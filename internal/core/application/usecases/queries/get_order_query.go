package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(principal kernel.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(principal.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Principal() kernel.Principal {
	return q.principal
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetails is an order with its lines in insertion order.
type OrderDetails struct {
	OrderSummary
	Notes string
	Lines []OrderLineView
}

// OrderLineView is one line of an order. MenuItemName is empty when the menu
// item has since been deleted.
type OrderLineView struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	UnitPrice    kernel.Money
	Quantity     int
	Subtotal     kernel.Money
}

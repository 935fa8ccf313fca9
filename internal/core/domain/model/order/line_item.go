package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one menu item and quantity inside an order. It is owned by its
// order and shares its lifetime.
//
// Invariant: subtotal == unitPrice * quantity after construction and after
// every quantity change.
type LineItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	unitPrice  kernel.Money
	quantity   int
	subtotal   kernel.Money

	isConstructed bool
}

// Subtotal computes unitPrice * quantity with exact decimal arithmetic.
// Quantity must be positive.
func Subtotal(unitPrice kernel.Money, quantity int) (kernel.Money, error) {
	if err := unitPrice.Validate(); err != nil {
		return kernel.Money{}, errs.NewValueIsRequiredErrorWithCause("unit price", err)
	}
	if quantity <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return unitPrice.Multiply(quantity)
}

// Total sums the subtotals of lines. An empty slice totals 0.00.
func Total(lines []*LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.subtotal)
	}
	return total
}

// NewLineItem snapshots the menu item's current unit price and derives the subtotal.
func NewLineItem(id, menuItemID kernel.UUID, unitPrice kernel.Money, quantity int) (*LineItem, error) {
	line := &LineItem{isConstructed: true}

	if err := errors.Join(
		line.setID(id),
		line.setMenuItemID(menuItemID),
		line.setQuantity(unitPrice, quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLineItem rebuilds a persisted line and verifies the stored subtotal.
func RestoreLineItem(
	id, menuItemID kernel.UUID,
	unitPrice kernel.Money,
	quantity int,
	subtotal kernel.Money,
) (*LineItem, error) {
	line, err := NewLineItem(id, menuItemID, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if !line.subtotal.IsEqual(subtotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("stored %s does not match %s x %d", subtotal, unitPrice, quantity),
		)
	}

	return line, nil
}

func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *LineItem) ID() kernel.UUID {
	return l.id
}

func (l *LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *LineItem) Quantity() int {
	return l.quantity
}

func (l *LineItem) Subtotal() kernel.Money {
	return l.subtotal
}

// changeQuantity is only reachable through Order so the parent total is
// recomputed in the same call.
func (l *LineItem) changeQuantity(quantity int) error {
	return l.setQuantity(l.unitPrice, quantity)
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu item", err)
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *LineItem) setQuantity(unitPrice kernel.Money, quantity int) error {
	subtotal, err := Subtotal(unitPrice, quantity)
	if err != nil {
		return err
	}
	l.unitPrice = unitPrice
	l.quantity = quantity
	l.subtotal = subtotal
	return nil
}

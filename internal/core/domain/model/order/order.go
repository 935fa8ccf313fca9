package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is a customer's request for menu items, tracked through a fulfilment status.
//
// Invariants:
//   - total == sum of line subtotals, recomputed on every line mutation
//   - lines keep insertion order
//   - a new order starts Pending with total 0.00 and no lines
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	createdAt       time.Time
	status          Status
	total           kernel.Money
	deliveryAddress string
	notes           string
	lines           []*LineItem

	isConstructed bool
}

// NewOrder creates an empty Pending order owned by customerID.
func NewOrder(
	id, customerID kernel.UUID,
	createdAt time.Time,
	deliveryAddress, notes string,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		total:           kernel.ZeroMoney(),
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		notes:           strings.TrimSpace(notes),
		lines:           make([]*LineItem, 0),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total must equal the sum
// of the restored lines.
func RestoreOrder(
	id, customerID kernel.UUID,
	createdAt time.Time,
	status Status,
	deliveryAddress, notes string,
	lines []*LineItem,
	total kernel.Money,
) (*Order, error) {
	o, err := NewOrder(id, customerID, createdAt, deliveryAddress, notes)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored %s does not match line sum %s", total, o.total),
		)
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) Notes() string {
	return o.notes
}

// Lines returns the line items in insertion order. The slice is a copy.
func (o *Order) Lines() []*LineItem {
	return slices.Clone(o.lines)
}

func (o *Order) LineCount() int {
	return len(o.lines)
}

// IsEmpty reports whether the order has no line items, the degraded outcome of placement.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// AddLine appends a line for menuItemID at unitPrice and recomputes the total.
func (o *Order) AddLine(lineID, menuItemID kernel.UUID, unitPrice kernel.Money, quantity int) (*LineItem, error) {
	line, err := NewLineItem(lineID, menuItemID, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	o.recomputeTotal()
	return line, nil
}

// ChangeLineQuantity updates one line's quantity, its subtotal and the order total.
func (o *Order) ChangeLineQuantity(lineID kernel.UUID, quantity int) error {
	line, err := o.findLine(lineID)
	if err != nil {
		return err
	}

	if err = line.changeQuantity(quantity); err != nil {
		return err
	}

	o.recomputeTotal()
	return nil
}

// RemoveLine drops one line and recomputes the total. Remaining lines keep their order.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	idx := slices.IndexFunc(o.lines, func(l *LineItem) bool { return l.id.IsEqual(lineID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("line item", lineID.String())
	}

	o.lines = slices.Delete(o.lines, idx, idx+1)
	o.recomputeTotal()
	return nil
}

// ChangeStatus moves the order to target. Any enumerated status is accepted;
// the policy only decides whether a terminal status may be left. The total is untouched.
func (o *Order) ChangeStatus(target Status, policy kernel.TransitionPolicy) error {
	newStatus, err := o.status.TransitionTo(target, policy)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) recomputeTotal() {
	o.total = Total(o.lines)
}

func (o *Order) findLine(lineID kernel.UUID) (*LineItem, error) {
	for _, line := range o.lines {
		if line.id.IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line item", lineID.String())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []*LineItem) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	o.recomputeTotal()
	return nil
}

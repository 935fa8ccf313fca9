package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewGetOrderQueryHandler(db *gorm.DB, authorizer ports.Authorizer) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, authorizer: authorizer}
}

// Handle loads one order. Callers allowed to read active orders see any
// order; callers limited to their own orders get AccessDenied for others.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	principal := query.Principal()
	ownOnly := false
	if err := h.authorizer.Authorize(ctx, principal, ports.ObjectOrders, ports.ActionReadActive); err != nil {
		if !errors.Is(err, errs.ErrAccessDenied) {
			return OrderDetails{}, err
		}
		if err = h.authorizer.Authorize(ctx, principal, ports.ObjectOrders, ports.ActionReadOwn); err != nil {
			return OrderDetails{}, err
		}
		ownOnly = true
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(orderSummarySelect+`
		WHERE o.id = ?
		GROUP BY o.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetails{}, err
	}
	summaries, err := scanOrderSummaries(rows)
	if err != nil {
		return OrderDetails{}, err
	}
	if len(summaries) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	details := OrderDetails{OrderSummary: summaries[0]}
	if ownOnly && !details.CustomerID.IsEqual(principal.ID()) {
		return OrderDetails{}, errs.NewAccessDeniedError(principal.Role().String(), ports.ObjectOrders, ports.ActionReadOwn)
	}

	if err = db.Raw(`SELECT notes FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Row().Scan(&details.Notes); err != nil {
		return OrderDetails{}, err
	}

	details.Lines, err = h.lines(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.menu_item_id,
			COALESCE(m.name, ''),
			l.unit_price,
			l.quantity,
			l.subtotal
		FROM order_line_items l
		LEFT JOIN menu_items m ON m.id = l.menu_item_id
		WHERE l.order_id = ?
		ORDER BY l.position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			line                OrderLineView
			id, menuItemID      uuid.UUID
			unitPrice, subtotal decimal.Decimal
		)

		if err = rows.Scan(&id, &menuItemID, &line.MenuItemName, &unitPrice, &line.Quantity, &subtotal); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if line.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

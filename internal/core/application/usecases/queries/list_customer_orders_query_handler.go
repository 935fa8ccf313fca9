package queries

import (
	"context"

	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db, authorizer: authorizer}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if err := h.authorizer.Authorize(ctx, principal, ports.ObjectOrders, ports.ActionReadOwn); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.customer_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`, principal.ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderSummaries(rows)
}

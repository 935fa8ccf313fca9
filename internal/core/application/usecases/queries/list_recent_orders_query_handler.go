package queries

import (
	"context"

	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type ListRecentOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListRecentOrdersQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListRecentOrdersQueryHandler {
	return ListRecentOrdersQueryHandler{db: db, authorizer: authorizer}
}

func (h ListRecentOrdersQueryHandler) Handle(ctx context.Context, query ListRecentOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectOrders, ports.ActionReadRecent); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		GROUP BY o.id
		ORDER BY o.created_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderSummaries(rows)
}

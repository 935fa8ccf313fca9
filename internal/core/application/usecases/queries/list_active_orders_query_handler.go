package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type ListActiveOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListActiveOrdersQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListActiveOrdersQueryHandler {
	return ListActiveOrdersQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns orders whose status is not terminal, in the order they
// were placed.
func (h ListActiveOrdersQueryHandler) Handle(ctx context.Context, query ListActiveOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectOrders, ports.ActionReadActive); err != nil {
		return nil, err
	}

	terminalStatuses := order.TerminalStatuses()
	terminal := make([]int, 0, len(terminalStatuses))
	for _, s := range terminalStatuses {
		terminal = append(terminal, int(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.status NOT IN ?
		GROUP BY o.id
		ORDER BY o.created_at ASC
	`, terminal).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderSummaries(rows)
}

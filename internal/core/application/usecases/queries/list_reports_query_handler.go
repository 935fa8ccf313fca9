package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListReportsQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListReportsQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListReportsQueryHandler {
	return ListReportsQueryHandler{db: db, authorizer: authorizer}
}

func (h ListReportsQueryHandler) Handle(ctx context.Context, query ListReportsQuery) ([]ReportView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectReports, ports.ActionRead); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			generated_at,
			period_from,
			period_to,
			total_orders,
			total_sales,
			delivered_orders,
			completed_reservations
		FROM reports
		ORDER BY generated_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]ReportView, 0)
	for rows.Next() {
		var (
			view  ReportView
			id    uuid.UUID
			kind  int
			sales decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&kind,
			&view.GeneratedAt,
			&view.From,
			&view.To,
			&view.TotalOrders,
			&sales,
			&view.DeliveredOrders,
			&view.CompletedReservations,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.TotalSales, err = kernel.NewMoney(sales); err != nil {
			return nil, err
		}
		view.Kind = report.Kind(kind)

		reports = append(reports, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

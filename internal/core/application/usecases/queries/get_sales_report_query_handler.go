package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetSalesReportQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewGetSalesReportQueryHandler(db *gorm.DB, authorizer ports.Authorizer) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db, authorizer: authorizer}
}

func (h GetSalesReportQueryHandler) Handle(ctx context.Context, query GetSalesReportQuery) (SalesReport, error) {
	if err := query.Validate(); err != nil {
		return SalesReport{}, err
	}

	if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectReports, ports.ActionRead); err != nil {
		return SalesReport{}, err
	}

	today, week, month := SalesWindows(query.Now())
	delivered := int(order.Delivered)

	var report SalesReport
	var salesToday, salesWeek, salesMonth decimal.Decimal

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= ?),
			COUNT(*) FILTER (WHERE created_at >= ?),
			COUNT(*),
			COALESCE(SUM(total) FILTER (WHERE created_at >= ? AND status = ?), 0),
			COALESCE(SUM(total) FILTER (WHERE created_at >= ? AND status = ?), 0),
			COALESCE(SUM(total) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE created_at >= ?
	`, today, week, today, delivered, week, delivered, delivered, month).Row().Scan(
		&report.OrdersToday,
		&report.OrdersWeek,
		&report.OrdersMonth,
		&salesToday,
		&salesWeek,
		&salesMonth,
	)
	if err != nil {
		return SalesReport{}, err
	}

	if report.SalesToday, err = kernel.NewMoney(salesToday); err != nil {
		return SalesReport{}, err
	}
	if report.SalesWeek, err = kernel.NewMoney(salesWeek); err != nil {
		return SalesReport{}, err
	}
	if report.SalesMonth, err = kernel.NewMoney(salesMonth); err != nil {
		return SalesReport{}, err
	}

	report.TopProducts, err = h.topProducts(ctx)
	if err != nil {
		return SalesReport{}, err
	}

	return report, nil
}

func (h GetSalesReportQueryHandler) topProducts(ctx context.Context) ([]ProductSales, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.menu_item_id,
			COALESCE(m.name, ''),
			SUM(l.quantity) AS sold
		FROM order_line_items l
		LEFT JOIN menu_items m ON m.id = l.menu_item_id
		GROUP BY l.menu_item_id, m.name
		ORDER BY sold DESC, m.name
		LIMIT ?
	`, TopProductsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductSales, 0, TopProductsLimit)
	for rows.Next() {
		var (
			product ProductSales
			id      uuid.UUID
		)

		if err = rows.Scan(&id, &product.Name, &product.Quantity); err != nil {
			return nil, err
		}
		if product.MenuItemID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

package queries

import (
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CreatedAt       time.Time
	Status          order.Status
	Total           kernel.Money
	DeliveryAddress string
	LineCount       int
}

const orderSummarySelect = `
	SELECT
		o.id,
		o.customer_id,
		o.created_at,
		o.status,
		o.total,
		o.delivery_address,
		COUNT(l.id)
	FROM orders o
	LEFT JOIN order_line_items l ON l.order_id = o.id
`

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		summary, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary    OrderSummary
		id         uuid.UUID
		customerID uuid.UUID
		status     int
		total      decimal.Decimal
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&summary.CreatedAt,
		&status,
		&total,
		&summary.DeliveryAddress,
		&summary.LineCount,
	); err != nil {
		return OrderSummary{}, err
	}

	var err error
	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.Total, err = kernel.NewMoney(total); err != nil {
		return OrderSummary{}, err
	}
	summary.Status = order.Status(status)

	return summary, nil
}

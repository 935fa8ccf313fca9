// Package ports defines the contracts between the restaurant domain and its
// infrastructure: repositories, the menu catalog lookup, the unit of work and
// the authorizer. Adapters in internal/adapters implement them.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are stored with their order and deleted with it.
type OrderRepository interface {
	// Add persists a new order together with any lines it already holds.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddLineItem persists one line appended to aggregate and stores the
	// aggregate's recomputed total in the same call.
	AddLineItem(ctx context.Context, aggregate *order.Order, line *order.LineItem) error

	// Update persists status, total and line changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and, by cascade, its line items.
	// Used as the compensating step when order placement fails.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines in insertion order.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuCatalog resolves menu items for order placement.
// Every call reads the current row; prices are never cached.
type MenuCatalog interface {
	// Resolve returns the menu item with its current price.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	Resolve(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// IsAvailable reports the item's current availability flag.
	IsAvailable(ctx context.Context, id kernel.UUID) (bool, error)
}

// MenuRepository is the write side of the menu catalog.
type MenuRepository interface {
	MenuCatalog

	Add(ctx context.Context, item *menu.Item) error
	Update(ctx context.Context, item *menu.Item) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)
}

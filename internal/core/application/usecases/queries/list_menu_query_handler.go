package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMenuQueryHandler struct {
	db *gorm.DB
}

func NewListMenuQueryHandler(db *gorm.DB) ListMenuQueryHandler {
	return ListMenuQueryHandler{db: db}
}

func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, category, price, available
		FROM menu_items
		WHERE available OR NOT ?
		ORDER BY category, name
	`, query.OnlyAvailable()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		var (
			item  MenuItemView
			id    uuid.UUID
			price decimal.Decimal
		)

		if err = rows.Scan(&id, &item.Name, &item.Description, &item.Category, &price, &item.Available); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

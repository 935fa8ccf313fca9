// Package menurepo persists menu items and serves the menu catalog lookup.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text;not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Available   bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
		Price:       item.Price().Decimal(),
		Available:   item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Description, dto.Category, price, dto.Available)
}

// Package orderrepo persists order aggregates and their line items with GORM.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Line items are deleted with their order.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	Status          int             `gorm:"type:smallint;not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	Notes           string          `gorm:"type:text;not null"`
	LineItems       []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the order_line_items row. Position keeps insertion order.
// MenuItemID carries no foreign key so deleting a menu item never rewrites placed orders.
type LineItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lines := aggregate.Lines()
	lineItems := make([]LineItemDTO, 0, len(lines))

	for i, line := range lines {
		lineItems = append(lineItems, lineFromDomain(orderID, i, line))
	}

	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          int(aggregate.Status()),
		Total:           aggregate.Total().Decimal(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		LineItems:       lineItems,
	}
}

func lineFromDomain(orderID uuid.UUID, position int, line *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:         line.ID().Bytes(),
		OrderID:    orderID,
		MenuItemID: line.MenuItemID().Bytes(),
		Position:   position,
		UnitPrice:  line.UnitPrice().Decimal(),
		Quantity:   line.Quantity(),
		Subtotal:   line.Subtotal().Decimal(),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, which rejects a stored
// total that no longer matches its lines. dto.LineItems must be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, lineDTO := range dto.LineItems {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CreatedAt,
		order.Status(dto.Status),
		dto.DeliveryAddress,
		dto.Notes,
		lines,
		total,
	)
}

func lineToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, menuItemID, unitPrice, dto.Quantity, subtotal)
}

package postgres

import (
	"restaurant/internal/adapters/out/postgres/commentrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/reportrepo"
	"restaurant/internal/adapters/out/postgres/reservationrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&reservationrepo.ReservationDTO{},
		&reportrepo.ReportDTO{},
		&commentrepo.CommentDTO{},
	)
}

// Tables lists the owned tables in an order safe for TRUNCATE ... CASCADE.
func Tables() []string {
	return []string{"order_line_items", "orders", "menu_items", "reservations", "reports", "comments"}
}

// Package commands contains the operations that change restaurant state.
// Every command is built through its constructor, validated by its handler,
// authorized against the caller's role and persisted through a unit of work.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work views used by the command handlers. Each handler depends on
// the narrowest set of repositories it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuCatalogFactory interface {
		MenuCatalog() ports.MenuCatalog
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	CommentRepoFactory interface {
		CommentRepository() ports.CommentRepository
	}

	// PlaceOrderUoW spans the order repository and the catalog lookup used
	// while building lines.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuCatalogFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	ReservationUoW interface {
		TxManager
		ReservationRepoFactory
	}

	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	ReportUoW interface {
		TxManager
		ReportRepoFactory
	}

	ReportUoWFactory interface {
		Create() ReportUoW
	}

	// CommentUoW reads orders to check who may comment on them.
	CommentUoW interface {
		TxManager
		OrderRepoFactory
		CommentRepoFactory
	}

	CommentUoWFactory interface {
		Create() CommentUoW
	}
)

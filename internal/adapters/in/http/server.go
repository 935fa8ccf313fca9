// Package http exposes the restaurant use cases over a JSON API built on echo.
package http

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/report"
)

// CommandHandler runs a command that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	PlaceOrder        ResultHandler[commands.PlaceOrderCommand, commands.PlaceOrderResult]
	ChangeOrderStatus CommandHandler[commands.ChangeOrderStatusCommand]

	CreateMenuItem          CommandHandler[commands.CreateMenuItemCommand]
	SetMenuItemAvailability CommandHandler[commands.SetMenuItemAvailabilityCommand]
	DeleteMenuItem          CommandHandler[commands.DeleteMenuItemCommand]

	CreateReservation       CommandHandler[commands.CreateReservationCommand]
	ChangeReservationStatus CommandHandler[commands.ChangeReservationStatusCommand]

	GenerateReport ResultHandler[commands.GenerateReportCommand, *report.Report]

	CreateComment  CommandHandler[commands.CreateCommentCommand]
	ApproveComment CommandHandler[commands.ApproveCommentCommand]
	DeleteComment  CommandHandler[commands.DeleteCommentCommand]

	ListMenu                 ResultHandler[queries.ListMenuQuery, []queries.MenuItemView]
	ListCustomerOrders       ResultHandler[queries.ListCustomerOrdersQuery, []queries.OrderSummary]
	ListActiveOrders         ResultHandler[queries.ListActiveOrdersQuery, []queries.OrderSummary]
	ListRecentOrders         ResultHandler[queries.ListRecentOrdersQuery, []queries.OrderSummary]
	GetOrder                 ResultHandler[queries.GetOrderQuery, queries.OrderDetails]
	ListCustomerReservations ResultHandler[queries.ListCustomerReservationsQuery, []queries.ReservationView]
	ListReservations         ResultHandler[queries.ListReservationsQuery, []queries.ReservationView]
	GetSalesReport           ResultHandler[queries.GetSalesReportQuery, queries.SalesReport]
	ListReports              ResultHandler[queries.ListReportsQuery, []queries.ReportView]
	ListComments             ResultHandler[queries.ListCommentsQuery, []queries.CommentView]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers          Handlers
	metrics           *Metrics
	logger            *slog.Logger
	recentOrdersLimit int
}

func NewServer(handlers Handlers, metrics *Metrics, recentOrdersLimit int, logger *slog.Logger) *Server {
	if recentOrdersLimit <= 0 {
		recentOrdersLimit = queries.DefaultRecentOrdersLimit
	}

	return &Server{
		handlers:          handlers,
		metrics:           metrics,
		logger:            logger.With("component", "http"),
		recentOrdersLimit: recentOrdersLimit,
	}
}

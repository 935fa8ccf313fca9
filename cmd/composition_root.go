package cmd

import (
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/authz"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	authorizer ports.Authorizer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		authorizer: enforcer,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) transitionPolicy() kernel.TransitionPolicy {
	if c.config.BlockTerminal {
		return kernel.BlockTerminalTransition
	}
	return kernel.FreeTransition
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f, c.authorizer, commands.PlaceOrderOptions{
		StrictAvailability: c.config.StrictAvailability,
		Transactional:      c.config.TransactionalPlacement,
	}, c.logger)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewChangeOrderStatusCommandHandler(f, c.authorizer, c.transitionPolicy())
	return &h
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() *commands.CreateMenuItemCommandHandler {
	h := commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() *commands.SetMenuItemAvailabilityCommandHandler {
	h := commands.NewSetMenuItemAvailabilityCommandHandler(c.menuUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() *commands.DeleteMenuItemCommandHandler {
	h := commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateReservationCommandHandler() *commands.CreateReservationCommandHandler {
	h := commands.NewCreateReservationCommandHandler(c.reservationUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) CreateChangeReservationStatusCommandHandler() *commands.ChangeReservationStatusCommandHandler {
	h := commands.NewChangeReservationStatusCommandHandler(c.reservationUoWFactory(), c.authorizer, c.transitionPolicy())
	return &h
}

func (c *CompositionRoot) CreateGenerateReportCommandHandler() *commands.GenerateReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewGenerateReportCommandHandler(f, c.authorizer)
	return &h
}

func (c *CompositionRoot) commentUoWFactory() commands.CommentUoWFactory {
	return FuncCommentUoWFactory(func() commands.CommentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCommentCommandHandler() *commands.CreateCommentCommandHandler {
	h := commands.NewCreateCommentCommandHandler(c.commentUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) CreateApproveCommentCommandHandler() *commands.ApproveCommentCommandHandler {
	h := commands.NewApproveCommentCommandHandler(c.commentUoWFactory(), c.authorizer)
	return &h
}

func (c *CompositionRoot) CreateDeleteCommentCommandHandler() *commands.DeleteCommentCommandHandler {
	h := commands.NewDeleteCommentCommandHandler(c.commentUoWFactory(), c.authorizer)
	return &h
}

// CreateHandlers wires every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),

		CreateMenuItem:          c.CreateCreateMenuItemCommandHandler(),
		SetMenuItemAvailability: c.CreateSetMenuItemAvailabilityCommandHandler(),
		DeleteMenuItem:          c.CreateDeleteMenuItemCommandHandler(),

		CreateReservation:       c.CreateCreateReservationCommandHandler(),
		ChangeReservationStatus: c.CreateChangeReservationStatusCommandHandler(),

		GenerateReport: c.CreateGenerateReportCommandHandler(),

		CreateComment:  c.CreateCreateCommentCommandHandler(),
		ApproveComment: c.CreateApproveCommentCommandHandler(),
		DeleteComment:  c.CreateDeleteCommentCommandHandler(),

		ListMenu:                 queries.NewListMenuQueryHandler(c.gormDB),
		ListCustomerOrders:       queries.NewListCustomerOrdersQueryHandler(c.gormDB, c.authorizer),
		ListActiveOrders:         queries.NewListActiveOrdersQueryHandler(c.gormDB, c.authorizer),
		ListRecentOrders:         queries.NewListRecentOrdersQueryHandler(c.gormDB, c.authorizer),
		GetOrder:                 queries.NewGetOrderQueryHandler(c.gormDB, c.authorizer),
		ListCustomerReservations: queries.NewListCustomerReservationsQueryHandler(c.gormDB, c.authorizer),
		ListReservations:         queries.NewListReservationsQueryHandler(c.gormDB, c.authorizer),
		GetSalesReport:           queries.NewGetSalesReportQueryHandler(c.gormDB, c.authorizer),
		ListReports:              queries.NewListReportsQueryHandler(c.gormDB, c.authorizer),
		ListComments:             queries.NewListCommentsQueryHandler(c.gormDB, c.authorizer),
	}
}

// CreateHTTPServer registers the metrics with reg and builds the API server.
func (c *CompositionRoot) CreateHTTPServer(reg prometheus.Registerer) *httpadapter.Server {
	return httpadapter.NewServer(c.CreateHandlers(), httpadapter.NewMetrics(reg), c.config.RecentOrdersLimit, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGenerateReportCommandHandler(), c.config.ReportSchedules(), c.logger)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncCommentUoWFactory func() commands.CommentUoW

func (f FuncCommentUoWFactory) Create() commands.CommentUoW {
	return f()
}

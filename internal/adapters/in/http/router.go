package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewEcho builds the echo instance with the codec, validator, error
// handler, middleware and every route of the API. Routes under /api/v1 are
// checked against the contract after the principal is resolved.
func NewEcho(s *Server, contract *Contract, gatherer prometheus.Gatherer, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = JSONSerializer{}
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.yml", contract.ServeSpec)

	api := e.Group("/api/v1")

	public := api.Group("", contract.Middleware)
	public.GET("/menu", s.ListMenu)
	public.GET("/comments", s.ListComments)

	auth := api.Group("", RequirePrincipal, contract.Middleware)

	auth.POST("/menu", s.CreateMenuItem)
	auth.PATCH("/menu/:id/availability", s.SetMenuItemAvailability)
	auth.DELETE("/menu/:id", s.DeleteMenuItem)

	auth.POST("/orders", s.PlaceOrder)
	auth.GET("/orders/mine", s.ListCustomerOrders)
	auth.GET("/orders/active", s.ListActiveOrders)
	auth.GET("/orders/recent", s.ListRecentOrders)
	auth.GET("/orders/:id", s.GetOrder)
	auth.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	auth.POST("/reservations", s.CreateReservation)
	auth.GET("/reservations/mine", s.ListCustomerReservations)
	auth.GET("/reservations", s.ListReservations)
	auth.PATCH("/reservations/:id/status", s.ChangeReservationStatus)

	auth.GET("/reports/sales", s.GetSalesReport)
	auth.POST("/reports", s.GenerateReport)
	auth.GET("/reports", s.ListReports)

	auth.POST("/comments", s.CreateComment)
	auth.GET("/comments/all", s.ListAllComments)
	auth.PATCH("/comments/:id/approve", s.ApproveComment)
	auth.DELETE("/comments/:id", s.DeleteComment)

	return e
}

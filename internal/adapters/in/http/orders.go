package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const degradedWarning = "order was placed without any items"

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart := make([]commands.CartEntry, len(req.Items))
	for i, item := range req.Items {
		cart[i] = commands.CartEntry{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewPlaceOrderCommand(principalFrom(c), kernel.NewUUID(), req.DeliveryAddress, req.Notes, cart)
	if err != nil {
		return err
	}

	result, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.OrdersPlaced.WithLabelValues(OutcomeFailed).Inc()
		var construction *commands.OrderConstructionError
		if errors.As(err, &construction) {
			s.logger.InfoContext(c.Request().Context(), "Order rejected",
				"entry", construction.EntryIndex,
				"error", construction.Cause,
			)
		}
		return err
	}

	response := PlaceOrderResponse{
		ID:        result.OrderID.String(),
		Total:     result.Total.String(),
		LineCount: result.LineCount,
		Degraded:  result.Degraded,
	}
	if result.Degraded {
		response.Warning = degradedWarning
		s.metrics.OrdersPlaced.WithLabelValues(OutcomeDegraded).Inc()
	} else {
		s.metrics.OrdersPlaced.WithLabelValues(OutcomeOK).Inc()
	}

	return c.JSON(http.StatusCreated, response)
}

// ListCustomerOrders handles GET /api/v1/orders/mine.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	query, err := queries.NewListCustomerOrdersQuery(principalFrom(c))
	if err != nil {
		return err
	}

	summaries, err := s.handlers.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderSummariesResponse(summaries))
}

// ListActiveOrders handles GET /api/v1/orders/active.
func (s *Server) ListActiveOrders(c echo.Context) error {
	query, err := queries.NewListActiveOrdersQuery(principalFrom(c))
	if err != nil {
		return err
	}

	summaries, err := s.handlers.ListActiveOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderSummariesResponse(summaries))
}

// ListRecentOrders handles GET /api/v1/orders/recent?limit=N.
func (s *Server) ListRecentOrders(c echo.Context) error {
	limit, err := queryInt(c, "limit", s.recentOrdersLimit)
	if err != nil {
		return err
	}

	query, err := queries.NewListRecentOrdersQuery(principalFrom(c), limit)
	if err != nil {
		return err
	}

	summaries, err := s.handlers.ListRecentOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderSummariesResponse(summaries))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(principalFrom(c), id)
	if err != nil {
		return err
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderDetailsResponse(details))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(principalFrom(c), id, status)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	s.metrics.OrderTransitions.WithLabelValues(status.String()).Inc()
	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateReservation(c echo.Context) error {
	var req ReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reservationID := kernel.NewUUID()
	cmd, err := commands.NewCreateReservationCommand(principalFrom(c), reservationID, req.ReservedFor, req.PartySize, req.Notes)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateReservation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": reservationID.String()})
}

func (s *Server) ListCustomerReservations(c echo.Context) error {
	query, err := queries.NewListCustomerReservationsQuery(principalFrom(c))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListCustomerReservations.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reservationsResponse(views))
}

// ListReservations handles GET /api/v1/reservations?status=confirmed&date=2024-06-01.
func (s *Server) ListReservations(c echo.Context) error {
	status := reservation.Unknown
	if raw := c.QueryParam("status"); raw != "" {
		var err error
		if status, err = reservation.ParseStatus(raw); err != nil {
			return err
		}
	}

	date, err := queryDate(c, "date")
	if err != nil {
		return err
	}

	query, err := queries.NewListReservationsQuery(principalFrom(c), status, date)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListReservations.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reservationsResponse(views))
}

func (s *Server) ChangeReservationStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReservationStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := reservation.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeReservationStatusCommand(principalFrom(c), id, status, req.Table)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeReservationStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	s.metrics.ReservationTransitions.WithLabelValues(status.String()).Inc()
	return c.NoContent(http.StatusNoContent)
}

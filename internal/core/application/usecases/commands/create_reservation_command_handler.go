package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"
)

// CreateReservationCommandHandler books a table request for the calling customer.
type CreateReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
	authorizer ports.Authorizer
}

func NewCreateReservationCommandHandler(
	uowFactory ReservationUoWFactory,
	authorizer ports.Authorizer,
) CreateReservationCommandHandler {
	return CreateReservationCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *CreateReservationCommandHandler) Handle(ctx context.Context, cmd CreateReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectReservations, ports.ActionCreate); err != nil {
		return err
	}

	r, err := reservation.NewReservation(
		cmd.ReservationID(),
		cmd.Principal().ID(),
		cmd.ReservedFor(),
		cmd.PartySize(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReservationRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

type ChangeReservationStatusCommandHandler struct {
	uowFactory ReservationUoWFactory
	authorizer ports.Authorizer
	policy     kernel.TransitionPolicy
}

func NewChangeReservationStatusCommandHandler(
	uowFactory ReservationUoWFactory,
	authorizer ports.Authorizer,
	policy kernel.TransitionPolicy,
) ChangeReservationStatusCommandHandler {
	return ChangeReservationStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		policy:     policy,
	}
}

func (h *ChangeReservationStatusCommandHandler) Handle(ctx context.Context, cmd ChangeReservationStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectReservations, ports.ActionTransition); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReservationRepository()
	r, err := repo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = r.ChangeStatus(cmd.Status(), cmd.Table(), h.policy); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

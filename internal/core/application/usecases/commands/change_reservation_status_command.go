package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/guard"
)

var ErrChangeReservationStatusCommandIsNotConstructed = errors.New(
	"ChangeReservationStatusCommand must be created via NewChangeReservationStatusCommand constructor",
)

// ChangeReservationStatusCommand moves a reservation to another status.
// An empty table leaves the current assignment unchanged.
type ChangeReservationStatusCommand struct { //nolint:recvcheck //using for validation
	principal     kernel.Principal
	reservationID kernel.UUID
	status        reservation.Status
	table         string

	guard guard.ConstructorGuard
}

func NewChangeReservationStatusCommand(
	principal kernel.Principal,
	reservationID kernel.UUID,
	status reservation.Status,
	table string,
) (ChangeReservationStatusCommand, error) {
	if err := errors.Join(
		principal.Validate(),
		reservationID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeReservationStatusCommand{}, err
	}

	return ChangeReservationStatusCommand{
		principal:     principal,
		reservationID: reservationID,
		status:        status,
		table:         table,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeReservationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeReservationStatusCommandIsNotConstructed)
}

func (c ChangeReservationStatusCommand) Principal() kernel.Principal {
	return c.principal
}

func (c ChangeReservationStatusCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c ChangeReservationStatusCommand) Status() reservation.Status {
	return c.status
}

func (c ChangeReservationStatusCommand) Table() string {
	return c.table
}

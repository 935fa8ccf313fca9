package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateReservationCommandIsNotConstructed = errors.New(
	"CreateReservationCommand must be created via NewCreateReservationCommand constructor",
)

type CreateReservationCommand struct { //nolint:recvcheck //using for validation
	principal     kernel.Principal
	reservationID kernel.UUID
	reservedFor   time.Time
	partySize     int
	notes         string

	guard guard.ConstructorGuard
}

func NewCreateReservationCommand(
	principal kernel.Principal,
	reservationID kernel.UUID,
	reservedFor time.Time,
	partySize int,
	notes string,
) (CreateReservationCommand, error) {
	if err := errors.Join(principal.Validate(), reservationID.Validate()); err != nil {
		return CreateReservationCommand{}, err
	}

	return CreateReservationCommand{
		principal:     principal,
		reservationID: reservationID,
		reservedFor:   reservedFor,
		partySize:     partySize,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReservationCommandIsNotConstructed)
}

func (c CreateReservationCommand) Principal() kernel.Principal {
	return c.principal
}

func (c CreateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c CreateReservationCommand) ReservedFor() time.Time {
	return c.reservedFor
}

func (c CreateReservationCommand) PartySize() int {
	return c.partySize
}

func (c CreateReservationCommand) Notes() string {
	return c.notes
}

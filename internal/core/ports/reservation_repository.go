package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
)

type ReservationRepository interface {
	Add(ctx context.Context, aggregate *reservation.Reservation) error
	Update(ctx context.Context, aggregate *reservation.Reservation) error
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)
}

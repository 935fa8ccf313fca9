package queries

import (
	"context"

	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type ListReservationsQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListReservationsQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListReservationsQueryHandler {
	return ListReservationsQueryHandler{db: db, authorizer: authorizer}
}

func (h ListReservationsQueryHandler) Handle(ctx context.Context, query ListReservationsQuery) ([]ReservationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectReservations, ports.ActionReadAll); err != nil {
		return nil, err
	}

	status := query.Status()
	day, filterDay := query.Day()
	rows, err := h.db.WithContext(ctx).Raw(reservationSelect+`
		WHERE (? OR status = ?)
		  AND (? OR (reserved_for >= ? AND reserved_for < ?))
		ORDER BY created_at DESC
	`,
		status == reservation.Unknown, int(status),
		!filterDay, day, day.AddDate(0, 0, 1),
	).Rows()
	if err != nil {
		return nil, err
	}

	return scanReservations(rows)
}

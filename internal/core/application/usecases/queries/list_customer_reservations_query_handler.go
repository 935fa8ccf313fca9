package queries

import (
	"context"

	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type ListCustomerReservationsQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListCustomerReservationsQueryHandler(
	db *gorm.DB,
	authorizer ports.Authorizer,
) ListCustomerReservationsQueryHandler {
	return ListCustomerReservationsQueryHandler{db: db, authorizer: authorizer}
}

func (h ListCustomerReservationsQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerReservationsQuery,
) ([]ReservationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if err := h.authorizer.Authorize(ctx, principal, ports.ObjectReservations, ports.ActionReadOwn); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(reservationSelect+`
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, principal.ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanReservations(rows)
}

package queries

import (
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	ReservedFor time.Time
	PartySize   int
	Table       string
	Status      reservation.Status
	Notes       string
	CreatedAt   time.Time
}

const reservationSelect = `
	SELECT id, customer_id, reserved_for, party_size, table_number, status, notes, created_at
	FROM reservations
`

func scanReservations(rows *sql.Rows) ([]ReservationView, error) {
	defer rows.Close()

	views := make([]ReservationView, 0)
	for rows.Next() {
		var (
			view           ReservationView
			id, customerID uuid.UUID
			status         int
		)

		err := rows.Scan(
			&id,
			&customerID,
			&view.ReservedFor,
			&view.PartySize,
			&view.Table,
			&status,
			&view.Notes,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		view.Status = reservation.Status(status)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/guard"
)

var ErrListReservationsQueryIsNotConstructed = errors.New(
	"ListReservationsQuery must be created via NewListReservationsQuery constructor",
)

// ListReservationsQuery lists all reservations, newest first. A status of
// reservation.Unknown disables the status filter and a zero date disables the
// date filter.
type ListReservationsQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	status    reservation.Status
	day       time.Time

	guard guard.ConstructorGuard
}

// NewListReservationsQuery keeps only the calendar date of date, read in UTC.
func NewListReservationsQuery(
	principal kernel.Principal,
	status reservation.Status,
	date time.Time,
) (ListReservationsQuery, error) {
	var statusErr error
	if status != reservation.Unknown {
		statusErr = status.Validate()
	}

	if err := errors.Join(principal.Validate(), statusErr); err != nil {
		return ListReservationsQuery{}, err
	}

	return ListReservationsQuery{
		principal: principal,
		status:    status,
		day:       truncateToDay(date),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListReservationsQuery) Validate() error {
	return q.guard.Validate(ErrListReservationsQueryIsNotConstructed)
}

func (q ListReservationsQuery) Principal() kernel.Principal {
	return q.principal
}

func (q ListReservationsQuery) Status() reservation.Status {
	return q.status
}

// Day returns the UTC day to filter on and whether the filter is set.
func (q ListReservationsQuery) Day() (time.Time, bool) {
	return q.day, !q.day.IsZero()
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

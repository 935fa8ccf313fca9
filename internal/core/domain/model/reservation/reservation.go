package reservation

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	MinPartySize   = 1
	MaxPartySize   = 50
	maxTableLength = 10
)

var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation or RestoreReservation")

type Reservation struct {
	id          kernel.UUID
	customerID  kernel.UUID
	reservedFor time.Time
	partySize   int
	table       string
	status      Status
	notes       string
	createdAt   time.Time

	isConstructed bool
}

// NewReservation creates a pending reservation without a table.
func NewReservation(
	id, customerID kernel.UUID,
	reservedFor time.Time,
	partySize int,
	notes string,
	createdAt time.Time,
) (*Reservation, error) {
	return RestoreReservation(id, customerID, reservedFor, partySize, "", Pending, notes, createdAt)
}

func RestoreReservation(
	id, customerID kernel.UUID,
	reservedFor time.Time,
	partySize int,
	table string,
	status Status,
	notes string,
	createdAt time.Time,
) (*Reservation, error) {
	r := &Reservation{
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setReservedFor(reservedFor),
		r.setPartySize(partySize),
		r.setTable(table),
		r.setStatus(status),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

func (r *Reservation) ID() kernel.UUID {
	return r.id
}

func (r *Reservation) CustomerID() kernel.UUID {
	return r.customerID
}

func (r *Reservation) ReservedFor() time.Time {
	return r.reservedFor
}

func (r *Reservation) PartySize() int {
	return r.partySize
}

func (r *Reservation) Table() string {
	return r.table
}

func (r *Reservation) Status() Status {
	return r.status
}

func (r *Reservation) Notes() string {
	return r.notes
}

func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// ChangeStatus applies target and, when table is not blank, assigns the table.
// Nothing changes if either part is rejected.
func (r *Reservation) ChangeStatus(target Status, table string, policy kernel.TransitionPolicy) error {
	newStatus, err := r.status.TransitionTo(target, policy)
	if err != nil {
		return err
	}

	if strings.TrimSpace(table) != "" {
		if err = r.setTable(table); err != nil {
			return err
		}
	}

	r.status = newStatus
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	r.customerID = customerID
	return nil
}

func (r *Reservation) setReservedFor(reservedFor time.Time) error {
	if reservedFor.IsZero() {
		return errs.NewValueIsRequiredError("reserved for")
	}
	r.reservedFor = reservedFor
	return nil
}

func (r *Reservation) setPartySize(partySize int) error {
	if partySize < MinPartySize || partySize > MaxPartySize {
		return errs.NewValueIsOutOfRangeError("partySize", partySize, MinPartySize, MaxPartySize)
	}
	r.partySize = partySize
	return nil
}

func (r *Reservation) setTable(table string) error {
	table = strings.TrimSpace(table)
	if utf8.RuneCountInString(table) > maxTableLength {
		return errs.NewValueIsInvalidError("table")
	}
	r.table = table
	return nil
}

func (r *Reservation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Reservation) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	r.createdAt = createdAt
	return nil
}

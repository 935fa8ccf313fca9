// Package reservationrepo persists table reservations with GORM.
package reservationrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

type ReservationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ReservedFor time.Time `gorm:"not null;index"`
	PartySize   int       `gorm:"type:int;not null"`
	TableNumber string    `gorm:"type:varchar(10);not null"`
	Status      int       `gorm:"type:smallint;not null;index"`
	Notes       string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(r *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:          r.ID().Bytes(),
		CustomerID:  r.CustomerID().Bytes(),
		ReservedFor: r.ReservedFor(),
		PartySize:   r.PartySize(),
		TableNumber: r.Table(),
		Status:      int(r.Status()),
		Notes:       r.Notes(),
		CreatedAt:   r.CreatedAt(),
	}
}

func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return reservation.RestoreReservation(
		id,
		customerID,
		dto.ReservedFor,
		dto.PartySize,
		dto.TableNumber,
		reservation.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt,
	)
}

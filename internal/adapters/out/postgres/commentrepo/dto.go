// Package commentrepo persists customer comments with GORM.
package commentrepo

import (
	"time"

	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommentDTO maps the comments table. OrderID is NULL for comments about
// the restaurant as a whole.
type CommentDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index"`
	OrderID    uuid.NullUUID `gorm:"type:uuid;index"`
	Text       string        `gorm:"type:text;not null"`
	Rating     int           `gorm:"type:smallint;not null"`
	Approved   bool          `gorm:"not null;index"`
	CreatedAt  time.Time     `gorm:"not null;index"`
}

func (CommentDTO) TableName() string {
	return "comments"
}

func fromDomain(c *comment.Comment) CommentDTO {
	dto := CommentDTO{
		ID:         c.ID().Bytes(),
		CustomerID: c.CustomerID().Bytes(),
		Text:       c.Text(),
		Rating:     c.Rating(),
		Approved:   c.IsApproved(),
		CreatedAt:  c.CreatedAt(),
	}
	if orderID, ok := c.OrderID(); ok {
		dto.OrderID = uuid.NullUUID{UUID: orderID.Bytes(), Valid: true}
	}
	return dto
}

func toDomain(dto CommentDTO) (*comment.Comment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var orderID kernel.UUID
	if dto.OrderID.Valid {
		if orderID, err = kernel.UUIDFromBytes(dto.OrderID.UUID[:]); err != nil {
			return nil, err
		}
	}

	return comment.RestoreComment(
		id,
		customerID,
		orderID,
		dto.Text,
		dto.Rating,
		dto.Approved,
		dto.CreatedAt,
	)
}

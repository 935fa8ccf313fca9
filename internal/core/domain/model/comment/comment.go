package comment

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	MinRating     = 1
	MaxRating     = 5
	MaxTextLength = 1000
)

var ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment or RestoreComment")

type Comment struct {
	id         kernel.UUID
	customerID kernel.UUID
	orderID    kernel.UUID
	text       string
	rating     int
	approved   bool
	createdAt  time.Time

	isConstructed bool
}

// NewComment creates an unapproved comment. A zero orderID means the comment
// is not about a particular order.
func NewComment(
	id, customerID, orderID kernel.UUID,
	text string,
	rating int,
	createdAt time.Time,
) (*Comment, error) {
	return RestoreComment(id, customerID, orderID, text, rating, false, createdAt)
}

func RestoreComment(
	id, customerID, orderID kernel.UUID,
	text string,
	rating int,
	approved bool,
	createdAt time.Time,
) (*Comment, error) {
	c := &Comment{
		orderID:       orderID,
		approved:      approved,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
		c.setText(text),
		c.setRating(rating),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Comment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCommentIsNotConstructed
	}
	return nil
}

func (c *Comment) ID() kernel.UUID {
	return c.id
}

func (c *Comment) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID reports the order the comment is about, if any.
func (c *Comment) OrderID() (kernel.UUID, bool) {
	return c.orderID, c.orderID.Validate() == nil
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) Rating() int {
	return c.rating
}

func (c *Comment) IsApproved() bool {
	return c.approved
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// Approve publishes the comment. Approving twice is a no-op.
func (c *Comment) Approve() {
	c.approved = true
}

func (c *Comment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Comment) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customerID = customerID
	return nil
}

func (c *Comment) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("text length", n, 1, MaxTextLength)
	}
	c.text = text
	return nil
}

func (c *Comment) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	c.rating = rating
	return nil
}

func (c *Comment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	c.createdAt = createdAt
	return nil
}

package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCommentCommandIsNotConstructed = errors.New(
	"CreateCommentCommand must be created via NewCreateCommentCommand constructor",
)

type CreateCommentCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	commentID kernel.UUID
	orderID   kernel.UUID
	text      string
	rating    int

	guard guard.ConstructorGuard
}

// NewCreateCommentCommand builds the command. A zero orderID leaves the
// comment unattached to any order.
func NewCreateCommentCommand(
	principal kernel.Principal,
	commentID kernel.UUID,
	orderID kernel.UUID,
	text string,
	rating int,
) (CreateCommentCommand, error) {
	if err := errors.Join(principal.Validate(), commentID.Validate()); err != nil {
		return CreateCommentCommand{}, err
	}

	return CreateCommentCommand{
		principal: principal,
		commentID: commentID,
		orderID:   orderID,
		text:      text,
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCommentCommand) Validate() error {
	return c.guard.Validate(ErrCreateCommentCommandIsNotConstructed)
}

func (c CreateCommentCommand) Principal() kernel.Principal {
	return c.principal
}

func (c CreateCommentCommand) CommentID() kernel.UUID {
	return c.commentID
}

func (c CreateCommentCommand) OrderID() (kernel.UUID, bool) {
	return c.orderID, c.orderID.Validate() == nil
}

func (c CreateCommentCommand) Text() string {
	return c.text
}

func (c CreateCommentCommand) Rating() int {
	return c.rating
}

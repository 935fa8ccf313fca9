package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteCommentCommandIsNotConstructed = errors.New(
	"DeleteCommentCommand must be created via NewDeleteCommentCommand constructor",
)

type DeleteCommentCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	commentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCommentCommand(principal kernel.Principal, commentID kernel.UUID) (DeleteCommentCommand, error) {
	if err := errors.Join(principal.Validate(), commentID.Validate()); err != nil {
		return DeleteCommentCommand{}, err
	}

	return DeleteCommentCommand{
		principal: principal,
		commentID: commentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCommentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCommentCommandIsNotConstructed)
}

func (c DeleteCommentCommand) Principal() kernel.Principal {
	return c.principal
}

func (c DeleteCommentCommand) CommentID() kernel.UUID {
	return c.commentID
}

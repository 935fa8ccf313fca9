package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrApproveCommentCommandIsNotConstructed = errors.New(
	"ApproveCommentCommand must be created via NewApproveCommentCommand constructor",
)

type ApproveCommentCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	commentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveCommentCommand(principal kernel.Principal, commentID kernel.UUID) (ApproveCommentCommand, error) {
	if err := errors.Join(principal.Validate(), commentID.Validate()); err != nil {
		return ApproveCommentCommand{}, err
	}

	return ApproveCommentCommand{
		principal: principal,
		commentID: commentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveCommentCommand) Validate() error {
	return c.guard.Validate(ErrApproveCommentCommandIsNotConstructed)
}

func (c ApproveCommentCommand) Principal() kernel.Principal {
	return c.principal
}

func (c ApproveCommentCommand) CommentID() kernel.UUID {
	return c.commentID
}

package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// ApproveCommentCommandHandler publishes a comment in the public listing.
type ApproveCommentCommandHandler struct {
	uowFactory CommentUoWFactory
	authorizer ports.Authorizer
}

func NewApproveCommentCommandHandler(uowFactory CommentUoWFactory, authorizer ports.Authorizer) ApproveCommentCommandHandler {
	return ApproveCommentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *ApproveCommentCommandHandler) Handle(ctx context.Context, cmd ApproveCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectComments, ports.ActionModerate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CommentRepository()
	c, err := repo.Get(ctx, cmd.CommentID())
	if err != nil {
		return err
	}

	c.Approve()
	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteCommentCommandHandler removes a comment whether or not it was approved.
type DeleteCommentCommandHandler struct {
	uowFactory CommentUoWFactory
	authorizer ports.Authorizer
}

func NewDeleteCommentCommandHandler(uowFactory CommentUoWFactory, authorizer ports.Authorizer) DeleteCommentCommandHandler {
	return DeleteCommentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *DeleteCommentCommandHandler) Handle(ctx context.Context, cmd DeleteCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectComments, ports.ActionModerate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CommentRepository().Delete(ctx, cmd.CommentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CreateCommentCommandHandler stores an unapproved comment by the calling
// customer. A referenced order must exist and belong to that customer.
type CreateCommentCommandHandler struct {
	uowFactory CommentUoWFactory
	authorizer ports.Authorizer
}

func NewCreateCommentCommandHandler(uowFactory CommentUoWFactory, authorizer ports.Authorizer) CreateCommentCommandHandler {
	return CreateCommentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *CreateCommentCommandHandler) Handle(ctx context.Context, cmd CreateCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(ctx, principal, ports.ObjectComments, ports.ActionCreate); err != nil {
		return err
	}

	orderID, _ := cmd.OrderID()
	c, err := comment.NewComment(
		cmd.CommentID(),
		principal.ID(),
		orderID,
		cmd.Text(),
		cmd.Rating(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if id, ok := c.OrderID(); ok {
		o, getErr := uow.OrderRepository().Get(ctx, id)
		if getErr != nil {
			return getErr
		}
		if !o.CustomerID().IsEqual(principal.ID()) {
			return errs.NewAccessDeniedError(principal.Role().String(), ports.ObjectOrders, ports.ActionReadOwn)
		}
	}

	if err = uow.CommentRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListComments handles GET /api/v1/comments. Only approved comments are
// listed and no principal is needed.
func (s *Server) ListComments(c echo.Context) error {
	views, err := s.handlers.ListComments.Handle(c.Request().Context(), queries.NewListApprovedCommentsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentsResponse(views))
}

// ListAllComments handles GET /api/v1/comments/all for moderators.
func (s *Server) ListAllComments(c echo.Context) error {
	query, err := queries.NewListAllCommentsQuery(principalFrom(c))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListComments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentsResponse(views))
}

func (s *Server) CreateComment(c echo.Context) error {
	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var orderID kernel.UUID
	if req.OrderID != "" {
		var err error
		if orderID, err = kernel.UUIDFromString(req.OrderID); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
	}

	commentID := kernel.NewUUID()
	cmd, err := commands.NewCreateCommentCommand(principalFrom(c), commentID, orderID, req.Text, req.Rating)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateComment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": commentID.String()})
}

func (s *Server) ApproveComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveCommentCommand(principalFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.handlers.ApproveComment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCommentCommand(principalFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteComment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"
)

type CommentRepository interface {
	Add(ctx context.Context, aggregate *comment.Comment) error
	Update(ctx context.Context, aggregate *comment.Comment) error
	// Delete returns errs.ObjectNotFoundError when nothing was removed.
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*comment.Comment, error)
}

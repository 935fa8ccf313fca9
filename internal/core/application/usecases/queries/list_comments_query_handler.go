package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCommentsQueryHandler struct {
	db         *gorm.DB
	authorizer ports.Authorizer
}

func NewListCommentsQueryHandler(db *gorm.DB, authorizer ports.Authorizer) ListCommentsQueryHandler {
	return ListCommentsQueryHandler{db: db, authorizer: authorizer}
}

// Handle needs no principal for the approved listing. Listing unapproved
// comments requires the moderate permission.
func (h ListCommentsQueryHandler) Handle(ctx context.Context, query ListCommentsQuery) ([]CommentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.ApprovedOnly() {
		if err := h.authorizer.Authorize(ctx, query.Principal(), ports.ObjectComments, ports.ActionModerate); err != nil {
			return nil, err
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, order_id, text, rating, approved, created_at
		FROM comments
		WHERE approved OR NOT ?
		ORDER BY created_at DESC
	`, query.ApprovedOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]CommentView, 0)
	for rows.Next() {
		var (
			view           CommentView
			id, customerID uuid.UUID
			orderID        uuid.NullUUID
		)

		err = rows.Scan(&id, &customerID, &orderID, &view.Text, &view.Rating, &view.Approved, &view.CreatedAt)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			if view.OrderID, err = kernel.UUIDFromBytes(orderID.UUID[:]); err != nil {
				return nil, err
			}
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListCommentsQueryIsNotConstructed = errors.New(
	"ListCommentsQuery must be created via NewListApprovedCommentsQuery or NewListAllCommentsQuery",
)

// ListCommentsQuery lists comments newest first. Approved comments are
// public; the full list including unapproved ones is for moderators.
type ListCommentsQuery struct { //nolint:recvcheck //using for validation
	principal    kernel.Principal
	approvedOnly bool

	guard guard.ConstructorGuard
}

func NewListApprovedCommentsQuery() ListCommentsQuery {
	return ListCommentsQuery{
		approvedOnly: true,
		guard:        guard.NewConstructorGuard(),
	}
}

func NewListAllCommentsQuery(principal kernel.Principal) (ListCommentsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListCommentsQuery{}, err
	}

	return ListCommentsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListCommentsQuery) Validate() error {
	return q.guard.Validate(ErrListCommentsQueryIsNotConstructed)
}

// Principal is the zero value for the public listing.
func (q ListCommentsQuery) Principal() kernel.Principal {
	return q.principal
}

func (q ListCommentsQuery) ApprovedOnly() bool {
	return q.approvedOnly
}

// CommentView is one listed comment. OrderID is the zero UUID when the
// comment is not about an order.
type CommentView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	OrderID    kernel.UUID
	Text       string
	Rating     int
	Approved   bool
	CreatedAt  time.Time
}

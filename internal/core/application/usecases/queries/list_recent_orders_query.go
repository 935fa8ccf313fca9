package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	DefaultRecentOrdersLimit = 5
	MaxRecentOrdersLimit     = 100
)

var ErrListRecentOrdersQueryIsNotConstructed = errors.New(
	"ListRecentOrdersQuery must be created via NewListRecentOrdersQuery constructor",
)

// ListRecentOrdersQuery lists the newest orders across all customers.
type ListRecentOrdersQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	limit     int

	guard guard.ConstructorGuard
}

func NewListRecentOrdersQuery(principal kernel.Principal, limit int) (ListRecentOrdersQuery, error) {
	var limitErr error
	if limit < 1 || limit > MaxRecentOrdersLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxRecentOrdersLimit)
	}

	if err := errors.Join(principal.Validate(), limitErr); err != nil {
		return ListRecentOrdersQuery{}, err
	}

	return ListRecentOrdersQuery{
		principal: principal,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRecentOrdersQueryIsNotConstructed)
}

func (q ListRecentOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

func (q ListRecentOrdersQuery) Limit() int {
	return q.limit
}

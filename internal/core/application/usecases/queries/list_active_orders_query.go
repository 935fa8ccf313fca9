package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListActiveOrdersQueryIsNotConstructed = errors.New(
	"ListActiveOrdersQuery must be created via NewListActiveOrdersQuery constructor",
)

// ListActiveOrdersQuery lists every order that is neither delivered nor
// cancelled, oldest first, for the kitchen and front desk.
type ListActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewListActiveOrdersQuery(principal kernel.Principal) (ListActiveOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListActiveOrdersQuery{}, err
	}

	return ListActiveOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListActiveOrdersQueryIsNotConstructed)
}

func (q ListActiveOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

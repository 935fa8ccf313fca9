package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery lists the calling customer's orders, newest first.
type ListCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(principal kernel.Principal) (ListCustomerOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return ListCustomerOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListCustomerReservationsQueryIsNotConstructed = errors.New(
	"ListCustomerReservationsQuery must be created via NewListCustomerReservationsQuery constructor",
)

type ListCustomerReservationsQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewListCustomerReservationsQuery(principal kernel.Principal) (ListCustomerReservationsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListCustomerReservationsQuery{}, err
	}

	return ListCustomerReservationsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerReservationsQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerReservationsQueryIsNotConstructed)
}

func (q ListCustomerReservationsQuery) Principal() kernel.Principal {
	return q.principal
}

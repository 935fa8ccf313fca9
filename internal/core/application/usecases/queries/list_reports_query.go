package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const MaxReportsLimit = 100

var ErrListReportsQueryIsNotConstructed = errors.New(
	"ListReportsQuery must be created via NewListReportsQuery constructor",
)

// ListReportsQuery lists stored report snapshots, newest first.
type ListReportsQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	limit     int

	guard guard.ConstructorGuard
}

func NewListReportsQuery(principal kernel.Principal, limit int) (ListReportsQuery, error) {
	var limitErr error
	if limit < 1 || limit > MaxReportsLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxReportsLimit)
	}

	if err := errors.Join(principal.Validate(), limitErr); err != nil {
		return ListReportsQuery{}, err
	}

	return ListReportsQuery{
		principal: principal,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListReportsQuery) Validate() error {
	return q.guard.Validate(ErrListReportsQueryIsNotConstructed)
}

func (q ListReportsQuery) Principal() kernel.Principal {
	return q.principal
}

func (q ListReportsQuery) Limit() int {
	return q.limit
}

type ReportView struct {
	ID                    kernel.UUID
	Kind                  report.Kind
	GeneratedAt           time.Time
	From                  time.Time
	To                    time.Time
	TotalOrders           int
	TotalSales            kernel.Money
	DeliveredOrders       int
	CompletedReservations int
}

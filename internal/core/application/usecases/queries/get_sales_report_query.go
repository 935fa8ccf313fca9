package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const TopProductsLimit = 5

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery builds the live sales dashboard as of now.
type GetSalesReportQuery struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	now       time.Time

	guard guard.ConstructorGuard
}

func NewGetSalesReportQuery(principal kernel.Principal, now time.Time) (GetSalesReportQuery, error) {
	var nowErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}

	if err := errors.Join(principal.Validate(), nowErr); err != nil {
		return GetSalesReportQuery{}, err
	}

	return GetSalesReportQuery{
		principal: principal,
		now:       now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

func (q GetSalesReportQuery) Principal() kernel.Principal {
	return q.principal
}

func (q GetSalesReportQuery) Now() time.Time {
	return q.now
}

// SalesWindows returns the start of today and the starts of the 7 and 30 day
// windows, all at midnight in now's location.
func SalesWindows(now time.Time) (today, week, month time.Time) {
	y, m, d := now.Date()
	today = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return today, today.AddDate(0, 0, -7), today.AddDate(0, 0, -30)
}

// SalesReport counts orders placed since the start of each window. Sales
// only include delivered orders.
type SalesReport struct {
	OrdersToday int
	OrdersWeek  int
	OrdersMonth int
	SalesToday  kernel.Money
	SalesWeek   kernel.Money
	SalesMonth  kernel.Money
	TopProducts []ProductSales
}

// ProductSales is the all-time quantity sold of one menu item.
type ProductSales struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
}

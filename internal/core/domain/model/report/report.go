package report

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport or RestoreReport")

// Summary holds the figures aggregated over one period.
type Summary struct {
	TotalOrders           int
	TotalSales            kernel.Money
	DeliveredOrders       int
	CompletedReservations int
}

type Report struct {
	id          kernel.UUID
	kind        Kind
	generatedAt time.Time
	from        time.Time
	to          time.Time
	summary     Summary

	isConstructed bool
}

// NewReport snapshots summary for the period of kind ending at generatedAt.
func NewReport(id kernel.UUID, kind Kind, generatedAt time.Time, summary Summary) (*Report, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	from, to := kind.Period(generatedAt)
	return RestoreReport(id, kind, generatedAt, from, to, summary)
}

func RestoreReport(
	id kernel.UUID,
	kind Kind,
	generatedAt, from, to time.Time,
	summary Summary,
) (*Report, error) {
	r := &Report{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setKind(kind),
		r.setPeriod(generatedAt, from, to),
		r.setSummary(summary),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

func (r *Report) ID() kernel.UUID {
	return r.id
}

func (r *Report) Kind() Kind {
	return r.kind
}

func (r *Report) GeneratedAt() time.Time {
	return r.generatedAt
}

func (r *Report) From() time.Time {
	return r.from
}

func (r *Report) To() time.Time {
	return r.to
}

func (r *Report) Summary() Summary {
	return r.summary
}

func (r *Report) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Report) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Report) setPeriod(generatedAt, from, to time.Time) error {
	if generatedAt.IsZero() {
		return errs.NewValueIsRequiredError("generated at")
	}
	if !from.Before(to) {
		return errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%s is not before %s", from, to))
	}
	r.generatedAt = generatedAt
	r.from = from
	r.to = to
	return nil
}

func (r *Report) setSummary(summary Summary) error {
	if summary.TotalOrders < 0 || summary.DeliveredOrders < 0 || summary.CompletedReservations < 0 {
		return errs.NewValueIsInvalidErrorWithCause("summary", errors.New("counts must not be negative"))
	}
	if summary.DeliveredOrders > summary.TotalOrders {
		return errs.NewValueIsOutOfRangeError("deliveredOrders", summary.DeliveredOrders, 0, summary.TotalOrders)
	}
	if err := summary.TotalSales.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("total sales", err)
	}
	r.summary = summary
	return nil
}

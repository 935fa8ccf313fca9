package report_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Period(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := map[report.Kind]time.Time{
		report.Daily:   time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC),
		report.Weekly:  time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC),
		report.Monthly: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	}

	for kind, wantFrom := range tests {
		from, to := kind.Period(now)
		assert.Equal(t, wantFrom, from, kind.String())
		assert.Equal(t, now, to, kind.String())
	}
}

func TestParseKind(t *testing.T) {
	k, err := report.ParseKind("weekly")
	require.NoError(t, err)
	assert.Equal(t, report.Weekly, k)

	_, err = report.ParseKind("yearly")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReport(t *testing.T) {
	sales, err := kernel.MoneyFromString("120.50")
	require.NoError(t, err)
	now := time.Now()

	r, err := report.NewReport(kernel.NewUUID(), report.Daily, now, report.Summary{
		TotalOrders:           4,
		TotalSales:            sales,
		DeliveredOrders:       3,
		CompletedReservations: 2,
	})

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, now, r.To())
	assert.Equal(t, now.Add(-24*time.Hour), r.From())
	assert.Equal(t, "120.50", r.Summary().TotalSales.String())
}

func TestNewReport_InvalidSummary(t *testing.T) {
	_, err := report.NewReport(kernel.NewUUID(), report.Daily, time.Now(), report.Summary{
		TotalOrders:     1,
		DeliveredOrders: 2,
		TotalSales:      kernel.ZeroMoney(),
	})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = report.NewReport(kernel.NewUUID(), report.Daily, time.Now(), report.Summary{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReport_UnknownKind(t *testing.T) {
	_, err := report.NewReport(kernel.NewUUID(), report.Unknown, time.Now(), report.Summary{TotalSales: kernel.ZeroMoney()})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

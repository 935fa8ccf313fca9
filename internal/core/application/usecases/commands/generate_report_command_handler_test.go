package commands_test

import (
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewGenerateReportCommand(newPrincipal(t, kernel.RoleAdmin), kernel.NewUUID(), report.Weekly, now)
	require.NoError(t, err)

	summary := report.Summary{
		TotalOrders:           10,
		TotalSales:            newMoney(t, "250.00"),
		DeliveredOrders:       7,
		CompletedReservations: 3,
	}

	repo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReportRepository").Return(repo).Once(),
		repo.On("Summarize", ctx, now.Add(-7*24*time.Hour), now).Return(summary, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*report.Report")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, allowAll{})
	r, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, report.Weekly, r.Kind())
	assert.Equal(t, 10, r.Summary().TotalOrders)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGenerateReportCommandHandler_Handle_SummarizeError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGenerateReportCommand(newPrincipal(t, kernel.RoleAdmin), kernel.NewUUID(), report.Daily, time.Now())
	require.NoError(t, err)

	repo := new(MockReportRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReportRepository").Return(repo).Once()
	repo.On("Summarize", ctx, mock.Anything, mock.Anything).Return(report.Summary{}, errors.New("timeout")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, allowAll{})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewGenerateReportCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewGenerateReportCommand(newPrincipal(t, kernel.RoleAdmin), kernel.NewUUID(), report.Unknown, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

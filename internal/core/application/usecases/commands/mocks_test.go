package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) AddLineItem(ctx context.Context, o *order.Order, line *order.LineItem) error {
	return m.Called(ctx, o, line).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Resolve(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuCatalog) IsAvailable(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct {
	MockMenuCatalog
}

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Add(ctx context.Context, r *reservation.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, r *reservation.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*reservation.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReportRepository) Summarize(ctx context.Context, from, to time.Time) (report.Summary, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(report.Summary), args.Error(1)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Add(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCommentRepository) Get(ctx context.Context, id kernel.UUID) (*comment.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*comment.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuCatalog() ports.MenuCatalog {
	return m.Called().Get(0).(ports.MenuCatalog)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) ReservationRepository() ports.ReservationRepository {
	return m.Called().Get(0).(ports.ReservationRepository)
}

func (m *MockUoW) ReportRepository() ports.ReportRepository {
	return m.Called().Get(0).(ports.ReportRepository)
}

func (m *MockUoW) CommentRepository() ports.CommentRepository {
	return m.Called().Get(0).(ports.CommentRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return m.Called().Get(0).(commands.PlaceOrderUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	return m.Called().Get(0).(commands.MenuUoW)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	return m.Called().Get(0).(commands.ReservationUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	return m.Called().Get(0).(commands.ReportUoW)
}

type MockCommentUoWFactory struct{ mock.Mock }

func (m *MockCommentUoWFactory) Create() commands.CommentUoW {
	return m.Called().Get(0).(commands.CommentUoW)
}

// allowAll grants every request.
type allowAll struct{}

func (allowAll) Authorize(context.Context, kernel.Principal, string, string) error {
	return nil
}

// denyAll rejects every request.
type denyAll struct{}

func (denyAll) Authorize(_ context.Context, p kernel.Principal, object, action string) error {
	return errs.NewAccessDeniedError(p.Role().String(), object, action)
}

func newPrincipal(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newMenuItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), name, "", "food", newMoney(t, price))
	require.NoError(t, err)
	return item
}

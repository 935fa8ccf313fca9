package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type placeOrderFixture struct {
	repo    *MockOrderRepository
	catalog *MockMenuCatalog
	uow     *MockUoW
	factory *MockPlaceOrderUoWFactory
}

func newPlaceOrderFixture() placeOrderFixture {
	f := placeOrderFixture{
		repo:    new(MockOrderRepository),
		catalog: new(MockMenuCatalog),
		uow:     new(MockUoW),
		factory: new(MockPlaceOrderUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.uow.On("MenuCatalog").Return(f.catalog).Once()
	return f
}

func (f placeOrderFixture) assert(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func newHandler(f placeOrderFixture, opts commands.PlaceOrderOptions) commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(f.factory, allowAll{}, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func placeOrderCommand(t *testing.T, cart ...commands.CartEntry) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(newPrincipal(t, kernel.RoleCustomer), kernel.NewUUID(), "12 Main St", "", cart)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pizza := newMenuItem(t, "Pizza", "10.00")
	soda := newMenuItem(t, "Soda", "2.50")
	cmd := placeOrderCommand(t,
		commands.CartEntry{MenuItemID: pizza.ID().String(), Quantity: 2},
		commands.CartEntry{MenuItemID: soda.ID().String(), Quantity: 1},
	)

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.catalog.On("Resolve", ctx, pizza.ID()).Return(pizza, nil).Once(),
		f.repo.On("AddLineItem", ctx, mock.AnythingOfType("*order.Order"), mock.AnythingOfType("*order.LineItem")).
			Return(nil).Once(),
		f.catalog.On("Resolve", ctx, soda.ID()).Return(soda, nil).Once(),
		f.repo.On("AddLineItem", ctx, mock.AnythingOfType("*order.Order"), mock.AnythingOfType("*order.LineItem")).
			Return(nil).Once(),
		f.repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Total().String() == "22.50" && o.LineCount() == 2
		})).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.OrderID.IsEqual(cmd.OrderID()))
	assert.Equal(t, "22.50", result.Total.String())
	assert.Equal(t, 2, result.LineCount)
	assert.False(t, result.Degraded)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCartIsDegraded(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, "0.00", result.Total.String())
	assert.Zero(t, result.LineCount)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_UnknownItemDeletesOrder(t *testing.T) {
	ctx := t.Context()
	pizza := newMenuItem(t, "Pizza", "10.00")
	missing := kernel.NewUUID()
	cmd := placeOrderCommand(t,
		commands.CartEntry{MenuItemID: pizza.ID().String(), Quantity: 1},
		commands.CartEntry{MenuItemID: missing.String(), Quantity: 1},
	)

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.catalog.On("Resolve", ctx, pizza.ID()).Return(pizza, nil).Once(),
		f.repo.On("AddLineItem", ctx, mock.Anything, mock.Anything).Return(nil).Once(),
		f.catalog.On("Resolve", ctx, missing).
			Return(nil, errs.NewObjectNotFoundError("menu item", missing.String())).Once(),
		f.repo.On("Delete", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderConstruction)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	var constructionErr *commands.OrderConstructionError
	require.ErrorAs(t, err, &constructionErr)
	assert.Equal(t, 1, constructionErr.EntryIndex)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_MalformedEntriesDeleteOrder(t *testing.T) {
	pizza := newMenuItem(t, "Pizza", "10.00")

	tests := []struct {
		name  string
		entry commands.CartEntry
		want  error
	}{
		{"malformed id", commands.CartEntry{MenuItemID: "not-a-uuid", Quantity: 1}, errs.ErrValueIsInvalid},
		{"zero quantity", commands.CartEntry{MenuItemID: pizza.ID().String(), Quantity: 0}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd := placeOrderCommand(t, tt.entry)

			f := newPlaceOrderFixture()
			f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
			f.catalog.On("Resolve", ctx, pizza.ID()).Return(pizza, nil).Maybe()
			f.repo.On("Delete", ctx, mock.Anything).Return(nil).Once()

			h := newHandler(f, commands.PlaceOrderOptions{})
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrOrderConstruction)
			require.ErrorIs(t, err, tt.want)
			f.repo.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything, mock.Anything)
			f.assert(t)
		})
	}
}

func TestPlaceOrderCommandHandler_Handle_CompensatingDeleteFails(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	cmd := placeOrderCommand(t, commands.CartEntry{MenuItemID: missing.String(), Quantity: 1})
	deleteErr := errors.New("connection reset")

	f := newPlaceOrderFixture()
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.catalog.On("Resolve", ctx, missing).Return(nil, errs.NewObjectNotFoundError("menu item", missing.String())).Once()
	f.repo.On("Delete", ctx, mock.Anything).Return(deleteErr).Once()

	h := newHandler(f, commands.PlaceOrderOptions{})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderConstruction)
	require.ErrorIs(t, err, deleteErr)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_PersistenceErrorPropagatesUnchanged(t *testing.T) {
	ctx := t.Context()
	pizza := newMenuItem(t, "Pizza", "10.00")
	cmd := placeOrderCommand(t, commands.CartEntry{MenuItemID: pizza.ID().String(), Quantity: 1})
	dbErr := errors.New("disk full")

	f := newPlaceOrderFixture()
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.catalog.On("Resolve", ctx, pizza.ID()).Return(pizza, nil).Once()
	f.repo.On("AddLineItem", ctx, mock.Anything, mock.Anything).Return(dbErr).Once()
	f.repo.On("Delete", ctx, mock.Anything).Return(nil).Once()

	h := newHandler(f, commands.PlaceOrderOptions{})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, commands.ErrOrderConstruction)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_StrictAvailability(t *testing.T) {
	ctx := t.Context()
	pizza := newMenuItem(t, "Pizza", "10.00")
	cmd := placeOrderCommand(t, commands.CartEntry{MenuItemID: pizza.ID().String(), Quantity: 1})

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.repo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.catalog.On("Resolve", ctx, pizza.ID()).Return(pizza, nil).Once(),
		f.catalog.On("IsAvailable", ctx, pizza.ID()).Return(false, nil).Once(),
		f.repo.On("Delete", ctx, mock.Anything).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{StrictAvailability: true})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderConstruction)
	require.ErrorIs(t, err, commands.ErrMenuItemUnavailable)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_UnavailableItemAcceptedByDefault(t *testing.T) {
	ctx := t.Context()
	soldOut, err := menu.RestoreItem(kernel.NewUUID(), "Soup", "", "food", newMoney(t, "4.00"), false)
	require.NoError(t, err)
	cmd := placeOrderCommand(t, commands.CartEntry{MenuItemID: soldOut.ID().String(), Quantity: 1})

	f := newPlaceOrderFixture()
	f.repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.catalog.On("Resolve", ctx, soldOut.ID()).Return(soldOut, nil).Once()
	f.repo.On("AddLineItem", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Once()

	h := newHandler(f, commands.PlaceOrderOptions{})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "4.00", result.Total.String())
	f.catalog.AssertNotCalled(t, "IsAvailable", mock.Anything, mock.Anything)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_TransactionalRollsBackWithoutDelete(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	cmd := placeOrderCommand(t, commands.CartEntry{MenuItemID: missing.String(), Quantity: 1})

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.catalog.On("Resolve", ctx, missing).
			Return(nil, errs.NewObjectNotFoundError("menu item", missing.String())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{Transactional: true})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderConstruction)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_TransactionalCommits(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	f := newPlaceOrderFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.repo.On("Update", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newHandler(f, commands.PlaceOrderOptions{Transactional: true})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)
	factory := new(MockPlaceOrderUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, denyAll{}, commands.PlaceOrderOptions{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPlaceOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory, allowAll{}, commands.PlaceOrderOptions{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

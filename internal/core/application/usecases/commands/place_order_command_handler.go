package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// PlaceOrderOptions switches the optional placement behaviours.
type PlaceOrderOptions struct {
	// StrictAvailability rejects cart entries whose menu item is marked unavailable.
	StrictAvailability bool

	// Transactional runs the whole placement in one transaction. When false the
	// empty order is committed first and removed by a compensating delete if a
	// cart entry fails; a crash between the two leaves an empty order behind.
	Transactional bool
}

// PlaceOrderResult describes a placed order. Degraded is set when the order
// was kept without any line items.
type PlaceOrderResult struct {
	OrderID   kernel.UUID
	Total     kernel.Money
	LineCount int
	Degraded  bool
}

// PlaceOrderCommandHandler builds an order from a cart.
//
// The empty order is persisted first. Entries are then resolved against the
// menu catalog in submission order, each one appended and persisted together
// with the new total. The first failing entry aborts the loop and the order is
// removed before an OrderConstructionError is returned.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	authorizer ports.Authorizer
	options    PlaceOrderOptions
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	authorizer ports.Authorizer,
	options PlaceOrderOptions,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		options:    options,
		logger:     logger.With("component", "place_order"),
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectOrders, ports.ActionPlace); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if h.options.Transactional {
		if err := uow.Begin(ctx); err != nil {
			return PlaceOrderResult{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()
	}

	orderRepo := uow.OrderRepository()
	catalog := uow.MenuCatalog()

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Principal().ID(),
		time.Now().UTC(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	for i, entry := range cmd.Cart() {
		if err = h.addLine(ctx, catalog, orderRepo, o, entry); err != nil {
			return PlaceOrderResult{}, h.abort(ctx, orderRepo, o, i, err)
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if h.options.Transactional {
		if err = uow.Commit(ctx); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	result := PlaceOrderResult{
		OrderID:   o.ID(),
		Total:     o.Total(),
		LineCount: o.LineCount(),
		Degraded:  o.IsEmpty(),
	}

	if result.Degraded {
		h.logger.WarnContext(ctx, "order placed without items",
			"order_id", o.ID().String(),
			"customer_id", o.CustomerID().String())
	}

	return result, nil
}

func (h *PlaceOrderCommandHandler) addLine(
	ctx context.Context,
	catalog ports.MenuCatalog,
	orderRepo ports.OrderRepository,
	o *order.Order,
	entry CartEntry,
) error {
	menuItemID, err := kernel.UUIDFromString(entry.MenuItemID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", err)
	}

	item, err := catalog.Resolve(ctx, menuItemID)
	if err != nil {
		return err
	}

	if h.options.StrictAvailability {
		available, availErr := catalog.IsAvailable(ctx, menuItemID)
		if availErr != nil {
			return availErr
		}
		if !available {
			return ErrMenuItemUnavailable
		}
	}

	line, err := o.AddLine(kernel.NewUUID(), item.ID(), item.Price(), entry.Quantity)
	if err != nil {
		return err
	}

	return orderRepo.AddLineItem(ctx, o, line)
}

// abort removes the partially built order and classifies cause. In
// transactional mode the deferred rollback discards the order instead.
func (h *PlaceOrderCommandHandler) abort(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	o *order.Order,
	entryIndex int,
	cause error,
) error {
	err := cause
	if isConstructionCause(cause) {
		err = NewOrderConstructionError(entryIndex, cause)
	}

	if h.options.Transactional {
		return err
	}

	if deleteErr := orderRepo.Delete(ctx, o); deleteErr != nil {
		h.logger.ErrorContext(ctx, "compensating delete failed, empty order left behind",
			"order_id", o.ID().String(),
			"error", deleteErr)
		return errors.Join(err, deleteErr)
	}

	return err
}

func isConstructionCause(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, ErrMenuItemUnavailable)
}

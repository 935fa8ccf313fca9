package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderConstruction marks a placement aborted by a bad cart entry.
	ErrOrderConstruction = errors.New("order construction failed")

	// ErrMenuItemUnavailable is the cause when strict availability rejects an entry.
	ErrMenuItemUnavailable = errors.New("menu item is unavailable")
)

// OrderConstructionError is returned by PlaceOrder after the partially built
// order has been removed. errors.Is matches both ErrOrderConstruction and Cause.
type OrderConstructionError struct {
	EntryIndex int
	Cause      error
}

func NewOrderConstructionError(entryIndex int, cause error) *OrderConstructionError {
	return &OrderConstructionError{
		EntryIndex: entryIndex,
		Cause:      cause,
	}
}

func (e *OrderConstructionError) Error() string {
	return fmt.Sprintf("%s: cart entry %d: %v", ErrOrderConstruction, e.EntryIndex, e.Cause)
}

func (e *OrderConstructionError) Unwrap() []error {
	return []error{ErrOrderConstruction, e.Cause}
}

package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery lists the menu by category then name. The menu is public.
type ListMenuQuery struct { //nolint:recvcheck //using for validation
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewListMenuQuery(onlyAvailable bool) ListMenuQuery {
	return ListMenuQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

func (q ListMenuQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

type MenuItemView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       kernel.Money
	Available   bool
}

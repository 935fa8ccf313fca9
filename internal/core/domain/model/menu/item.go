package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	maxNameLength     = 100
	maxCategoryLength = 50
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a menu entry with its current unit price.
type Item struct {
	id          kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money
	available   bool

	isConstructed bool
}

// NewItem creates an available menu item.
func NewItem(id kernel.UUID, name, description, category string, price kernel.Money) (*Item, error) {
	return RestoreItem(id, name, description, category, price, true)
}

// RestoreItem rebuilds an item loaded from storage.
func RestoreItem(
	id kernel.UUID,
	name, description, category string,
	price kernel.Money,
	available bool,
) (*Item, error) {
	item := &Item{
		description:   strings.TrimSpace(description),
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) IsAvailable() bool {
	return i.available
}

// SetAvailability marks the item as offered or withdrawn. Orders already
// holding the item are unaffected.
func (i *Item) SetAvailability(available bool) {
	i.available = available
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("longer than %d characters", maxNameLength))
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("longer than %d characters", maxCategoryLength))
	}
	i.category = category
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	i.price = price
	return nil
}

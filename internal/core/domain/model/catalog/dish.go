package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu item. Names are unique across the catalog.
type Dish struct {
	number        int64
	name          string
	dishType      string
	price         kernel.Price
	tags          Tags
	isConstructed bool
}

// NewDish creates a validated dish.
//
// Example:
//
//	d, err := catalog.NewDish(12, "Pad Thai", "Pad Thai", kernel.MustNewPrice("58"),
//	    catalog.NewTags(catalog.Chicken, catalog.Rice))
func NewDish(number int64, name, dishType string, price kernel.Price, tags Tags) (*Dish, error) {
	d := &Dish{
		tags:          tags,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setNumber(number),
		d.setName(name),
		d.setType(dishType),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// Number returns the catalog number.
func (d *Dish) Number() int64 {
	return d.number
}

// Name returns the unique dish name.
func (d *Dish) Name() string {
	return d.name
}

// Type returns the menu section the dish belongs to.
func (d *Dish) Type() string {
	return d.dishType
}

// Price returns the current price.
func (d *Dish) Price() kernel.Price {
	return d.price
}

// Tags returns the dish's taste features.
func (d *Dish) Tags() Tags {
	return d.tags
}

func (d *Dish) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dish number", fmt.Errorf("%d is not greater than 0", number))
	}
	d.number = number
	return nil
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	// Names are embedded in tab-separated button labels.
	if strings.ContainsAny(name, "\t\n") {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q contains a tab or newline", name))
	}
	d.name = name
	return nil
}

func (d *Dish) setType(dishType string) error {
	dishType = strings.TrimSpace(dishType)
	if dishType == "" {
		return errs.NewValueIsRequiredError("dish type")
	}
	d.dishType = dishType
	return nil
}

func (d *Dish) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	d.price = price
	return nil
}

// Favorite is a recommended (name, price) pair. Dishes of the same name sold at
// different historical prices are distinct favorites.
type Favorite struct {
	Name  string
	Price kernel.Price
}

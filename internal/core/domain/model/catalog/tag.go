package catalog

import (
	"fmt"
	"strings"

	"orderbot/internal/pkg/errs"
)

// Tag is a flavor or nutrition feature of a dish.
type Tag uint8

const (
	Chicken Tag = iota
	Spicy
	Pastry
	Fish
	Tofu
	Beef
	Rice
	CoconutCream
	Eggs
	SeaFood
	Curry
	Fried
	Vegetarian
	Vegan

	tagCount
)

var tagNames = [tagCount]string{
	Chicken:      "chicken",
	Spicy:        "spicy",
	Pastry:       "pastry",
	Fish:         "fish",
	Tofu:         "tofu",
	Beef:         "beef",
	Rice:         "rice",
	CoconutCream: "coconut_cream",
	Eggs:         "eggs",
	SeaFood:      "sea_food",
	Curry:        "curry",
	Fried:        "fried",
	Vegetarian:   "vegetarian",
	Vegan:        "vegan",
}

// AllTags returns every tag in column order.
func AllTags() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// ParseTag resolves a tag by its column name.
func ParseTag(name string) (Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range tagNames {
		if n == name {
			return Tag(t), nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("tag", fmt.Errorf("%q is not a known tag", name))
}

// Validate checks that t belongs to the closed tag set.
func (t Tag) Validate() error {
	if t >= tagCount {
		return errs.NewValueIsInvalidErrorWithCause("tag", fmt.Errorf("%d is not a known tag", t))
	}
	return nil
}

func (t Tag) String() string {
	if t >= tagCount {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// Tags is a set of tags.
type Tags uint16

// NewTags builds a set from individual tags.
func NewTags(tags ...Tag) Tags {
	var s Tags
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// ParseTags builds a set from tag names.
func ParseTags(names []string) (Tags, error) {
	var s Tags
	for _, name := range names {
		t, err := ParseTag(name)
		if err != nil {
			return 0, err
		}
		s = s.With(t)
	}
	return s, nil
}

// With returns the set extended by t. Unknown tags are ignored.
func (s Tags) With(t Tag) Tags {
	if t.Validate() != nil {
		return s
	}
	return s | 1<<t
}

// Has reports whether t is in the set.
func (s Tags) Has(t Tag) bool {
	return t < tagCount && s&(1<<t) != 0
}

// List returns the tags of the set in column order.
func (s Tags) List() []Tag {
	var tags []Tag
	for _, t := range AllTags() {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

func (s Tags) String() string {
	names := make([]string, 0, tagCount)
	for _, t := range s.List() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}

// Package catalog holds the restaurant's single fixed menu: dishes, their
// flavor and nutrition tags, and the ordered list of menu sections.
//
// The package includes:
//   - Dish: a menu item with a unique name, a section (dish type), a price and tags
//   - Tag / Tags: the closed set of taste features and a bitmask over it
//   - Section: a menu section as presented to customers
//
// Tag order is significant: it fixes the column order of taste profiles.
package catalog

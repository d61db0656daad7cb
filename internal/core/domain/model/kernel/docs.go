// Package kernel provides core domain primitives shared by the ordering model.
//
// The package includes:
//   - Phone: the canonical customer and delivery-agent identifier
//   - Price: a non-negative money amount backed by shopspring/decimal
//
// Both are immutable value objects whose zero value fails validation.
package kernel

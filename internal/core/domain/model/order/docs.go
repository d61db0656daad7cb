// Package order provides the Order aggregate and its line items for the
// conversational ordering assistant.
//
// The package includes:
//   - Number: the monotonically increasing order number shown to customers
//   - Order: the aggregate root linking a customer, a delivery agent and an optional remark
//   - Line: one dish with its quantity inside an order
//   - CartItem: the read-side view of a line joined with its dish
//
// Key business rules:
//   - An order always references a customer and a delivery agent by phone
//   - Order numbers are positive and allocated by the persistence layer
//   - A line quantity is between 1 and MaxQuantity
//   - A remark overwrites the previous one, it is never appended
//
// Orders carry no stored status; the conversation decides what happens next.
package order

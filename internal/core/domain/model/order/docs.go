// Package order implements the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root, owning its line items
//   - LineItem: a menu reference with quantity and a price snapshot
//   - Type: DINE_IN, TAKEOUT or DELIVERY
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - An order has at least one line item
//   - Non dine-in line items need a quantity of at least 1; dine-in orders tolerate zero
//     and negative quantities
//   - Delivery orders carry an address, dine-in orders carry a table
//   - Status moves WAITING -> ACCEPTED -> SERVED -> COMPLETED, with
//     SERVED -> DELIVERING -> DELIVERED -> COMPLETED for delivery orders
package order

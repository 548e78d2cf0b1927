// Package kernel provides the value objects shared by every kitchenpos aggregate.
//
// The package includes:
//   - UUID: identifier of orders, menus, menu groups, tables and table groups
//   - Money: a non-negative decimal amount with exact equality
//   - Address: a trimmed, non-blank delivery address
//
// All of them are immutable and have an invalid zero value, so a field that was never
// assigned through a constructor fails Validate.
package kernel

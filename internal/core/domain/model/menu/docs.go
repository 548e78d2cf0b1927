// Package menu implements the Menu and MenuGroup aggregates.
//
// A Menu is what a line item references: it has a name, a non-negative price,
// a displayed flag and belongs to exactly one MenuGroup. Orders may only use
// displayed menus at their current price.
package menu

// Package table implements the OrderTable and TableGroup aggregates.
//
// An OrderTable is a physical table. It is empty until guests sit down, tracks the
// number of guests while occupied and may be merged with other tables into a
// TableGroup. Grouping and ungrouping are coordinated by services.TableGrouper,
// since they span several aggregates.
//
// Key business rules:
//   - Only empty, ungrouped tables can be grouped; grouping occupies them
//   - A grouped table cannot be cleared
//   - The number of guests is never negative and cannot be set on an empty table
//   - A group always has at least two tables
package table

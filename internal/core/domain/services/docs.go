// Package services provides domain services that coordinate business rules spanning
// several aggregates of the point-of-sale system.
//
// The package includes:
//   - MenuChecker: checks order line items against the menus they reference
//   - TableGrouper: merges tables into a TableGroup and splits them again
//
// Services never load or store anything; command handlers fetch the aggregates,
// pass them in and persist the result.
package services

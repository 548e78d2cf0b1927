// Package ports defines the contracts between the point-of-sale core and its adapters:
// repositories for every aggregate, the unit of work binding them to one transaction,
// and the rider dispatch client.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// line items included.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order. Line items never change
	// after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order in storage order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// ExistsByTablesAndStatusNot reports whether any order placed at one of tableIDs
	// has a status other than status.
	//
	// Example:
	//   open, err := repo.ExistsByTablesAndStatusNot(ctx, []kernel.UUID{tableID}, order.Completed)
	ExistsByTablesAndStatusNot(ctx context.Context, tableIDs []kernel.UUID, status order.Status) (bool, error)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	// OrderUoW covers the order lifecycle: orders, the menus they reference and
	// the tables they are placed at.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   tableRepo := uow.OrderTableRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuUoW covers menus and menu groups.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// TableUoW covers tables and table groups, plus the orders that decide whether
	// a table may be cleared or ungrouped.
	TableUoW interface {
		TxManager
		OrderRepoFactory
		OrderTableRepoFactory
		TableGroupRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}
)

package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderLister is satisfied by ports.OrderRepository.
type OrderLister interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// MenuLister is satisfied by ports.MenuRepository.
type MenuLister interface {
	GetAll(ctx context.Context) ([]*menu.Menu, error)
}

// MenuGroupLister is satisfied by ports.MenuGroupRepository.
type MenuGroupLister interface {
	GetAll(ctx context.Context) ([]*menu.MenuGroup, error)
}

// OrderTableLister is satisfied by ports.OrderTableRepository.
type OrderTableLister interface {
	GetAll(ctx context.Context) ([]*table.OrderTable, error)
}

// ActiveOrderReader reads the order board: every order that is not completed,
// oldest first.
type ActiveOrderReader interface {
	ReadActiveOrders(ctx context.Context) ([]ActiveOrderResponse, error)
}

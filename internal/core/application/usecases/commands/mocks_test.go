package commands_test

import (
	"context"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByTablesAndStatusNot(
	ctx context.Context,
	tableIDs []kernel.UUID,
	status order.Status,
) (bool, error) {
	args := m.Called(ctx, tableIDs, status)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, aggregate *menu.MenuGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuGroup), args.Error(1)
}

func (m *MockMenuGroupRepository) GetAll(ctx context.Context) ([]*menu.MenuGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuGroup), args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, t *table.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, t *table.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAllByTableGroup(
	ctx context.Context,
	groupID kernel.UUID,
) ([]*table.OrderTable, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAll(ctx context.Context) ([]*table.OrderTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

type MockTableGroupRepository struct{ mock.Mock }

func (m *MockTableGroupRepository) Add(ctx context.Context, g *table.TableGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.TableGroup), args.Error(1)
}

func (m *MockTableGroupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

func (m *MockUoW) TableGroupRepository() ports.TableGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.TableGroupRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	address kernel.Address,
) error {
	args := m.Called(ctx, orderID, amount, address)
	return args.Error(0)
}

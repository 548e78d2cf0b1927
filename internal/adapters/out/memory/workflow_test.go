package memory_test

import (
	"context"
	"testing"

	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type orderUoWFactory struct{ f ports.UnitOfWorkFactory }

func (o orderUoWFactory) Create() commands.OrderUoW { return o.f.Create() }

type menuUoWFactory struct{ f ports.UnitOfWorkFactory }

func (m menuUoWFactory) Create() commands.MenuUoW { return m.f.Create() }

type tableUoWFactory struct{ f ports.UnitOfWorkFactory }

func (t tableUoWFactory) Create() commands.TableUoW { return t.f.Create() }

type recordingDispatcher struct {
	requests []kernel.UUID
}

func (d *recordingDispatcher) RequestDelivery(_ context.Context, orderID kernel.UUID, _ decimal.Decimal, _ kernel.Address) error {
	d.requests = append(d.requests, orderID)
	return nil
}

// WorkflowTestSuite drives the command handlers against one shared Store.
type WorkflowTestSuite struct {
	suite.Suite
	store      *memory.Store
	factory    ports.UnitOfWorkFactory
	dispatcher *recordingDispatcher
	menu       *menu.Menu
}

func (s *WorkflowTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.factory = memory.NewUnitOfWorkFactory(s.store)
	s.dispatcher = &recordingDispatcher{}

	ctx := s.T().Context()
	groupCmd, err := commands.NewCreateMenuGroupCommand(kernel.NewUUID(), "Chicken")
	s.Require().NoError(err)
	groupHandler := commands.NewCreateMenuGroupCommandHandler(menuUoWFactory{s.factory})
	group, err := groupHandler.Handle(ctx, groupCmd)
	s.Require().NoError(err)

	menuCmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Fried", kernel.MustMoney("16000"), group.ID(), true)
	s.Require().NoError(err)
	menuHandler := commands.NewCreateMenuCommandHandler(menuUoWFactory{s.factory})
	s.menu, err = menuHandler.Handle(ctx, menuCmd)
	s.Require().NoError(err)
}

func (s *WorkflowTestSuite) TestDeliveryOrder_FullLifecycle() {
	o := s.createOrder(order.Delivery, nil, "12 Baker Street")
	s.Equal(order.Waiting, o.Status())

	s.changeStatus(commands.NewAcceptOrderCommand, o.ID())
	s.Equal([]kernel.UUID{o.ID()}, s.dispatcher.requests)

	s.changeStatus(commands.NewServeOrderCommand, o.ID())
	s.changeStatus(commands.NewStartDeliveryCommand, o.ID())
	s.changeStatus(commands.NewCompleteDeliveryCommand, o.ID())
	completed := s.changeStatus(commands.NewCompleteOrderCommand, o.ID())

	s.Equal(order.Completed, completed.Status())
	s.Len(s.dispatcher.requests, 1)
}

func (s *WorkflowTestSuite) TestDineInOrder_CompletionVacatesTable() {
	t := s.createTable("T1")
	s.occupy(commands.NewSitTableCommand, t.ID())
	s.guests(t.ID(), 4)

	first := s.createOrder(order.DineIn, ptr(t.ID()), "")
	second := s.createOrder(order.DineIn, ptr(t.ID()), "")

	for _, o := range []*order.Order{first, second} {
		s.changeStatus(commands.NewAcceptOrderCommand, o.ID())
		s.changeStatus(commands.NewServeOrderCommand, o.ID())
	}
	s.Empty(s.dispatcher.requests)

	s.changeStatus(commands.NewCompleteOrderCommand, first.ID())
	stored := s.getTable(t.ID())
	s.False(stored.IsEmpty(), "second order is still open")
	s.Equal(4, stored.NumberOfGuests())

	s.changeStatus(commands.NewCompleteOrderCommand, second.ID())
	stored = s.getTable(t.ID())
	s.True(stored.IsEmpty())
	s.Equal(0, stored.NumberOfGuests())
}

func (s *WorkflowTestSuite) TestDineInOrder_EmptyTableIsRejected() {
	t := s.createTable("T1")
	item := commands.OrderLineItemRequest{MenuID: s.menu.ID(), Quantity: 1, Price: s.menu.Price()}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.DineIn, []commands.OrderLineItemRequest{item}, ptr(t.ID()), "")
	s.Require().NoError(err)
	handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{s.factory})

	_, err = handler.Handle(s.T().Context(), cmd)

	s.Require().Error(err)
	s.True(errs.IsIllegalState(err))

	orders, err := s.factory.Create().OrderRepository().GetAll(s.T().Context())
	s.Require().NoError(err)
	s.Empty(orders, "failed creation stores nothing")
}

func (s *WorkflowTestSuite) TestTableGroup_DeleteBlockedByOpenOrder() {
	ctx := s.T().Context()
	t1 := s.createTable("T1")
	t2 := s.createTable("T2")

	groupCmd, err := commands.NewCreateTableGroupCommand(kernel.NewUUID(), []kernel.UUID{t1.ID(), t2.ID()})
	s.Require().NoError(err)
	createGroup := commands.NewCreateTableGroupCommandHandler(tableUoWFactory{s.factory})
	group, err := createGroup.Handle(ctx, groupCmd)
	s.Require().NoError(err)

	member := s.getTable(t1.ID())
	s.False(member.IsEmpty())
	s.True(member.TableGroupID().IsEqual(group.ID()))

	o := s.createOrder(order.DineIn, ptr(t2.ID()), "")

	deleteCmd, err := commands.NewDeleteTableGroupCommand(group.ID())
	s.Require().NoError(err)
	deleteGroup := commands.NewDeleteTableGroupCommandHandler(tableUoWFactory{s.factory})
	err = deleteGroup.Handle(ctx, deleteCmd)
	s.Require().Error(err)
	s.True(errs.IsInvalidArgument(err))
	s.True(s.getTable(t2.ID()).IsGrouped(), "rejected delete leaves membership intact")

	s.changeStatus(commands.NewAcceptOrderCommand, o.ID())
	s.changeStatus(commands.NewServeOrderCommand, o.ID())
	s.changeStatus(commands.NewCompleteOrderCommand, o.ID())

	s.Require().NoError(deleteGroup.Handle(ctx, deleteCmd))
	s.False(s.getTable(t1.ID()).IsGrouped())
	_, err = s.factory.Create().TableGroupRepository().Get(ctx, group.ID())
	s.True(errs.IsNotFound(err))
}

func (s *WorkflowTestSuite) TestActiveOrders_ReflectLifecycle() {
	o := s.createOrder(order.Takeout, nil, "")
	s.createOrder(order.Takeout, nil, "")

	s.changeStatus(commands.NewAcceptOrderCommand, o.ID())
	s.changeStatus(commands.NewServeOrderCommand, o.ID())
	s.changeStatus(commands.NewCompleteOrderCommand, o.ID())

	board, err := memory.NewActiveOrderReader(s.store).ReadActiveOrders(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(board, 1)
	s.Equal(order.Waiting, board[0].Status)
}

func (s *WorkflowTestSuite) createOrder(orderType order.Type, tableID *kernel.UUID, address string) *order.Order {
	item := commands.OrderLineItemRequest{MenuID: s.menu.ID(), Quantity: 1, Price: s.menu.Price()}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderType, []commands.OrderLineItemRequest{item}, tableID, address)
	s.Require().NoError(err)
	handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{s.factory})
	o, err := handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return o
}

func (s *WorkflowTestSuite) changeStatus(
	newCommand func(kernel.UUID) (commands.ChangeOrderStatusCommand, error),
	orderID kernel.UUID,
) *order.Order {
	cmd, err := newCommand(orderID)
	s.Require().NoError(err)
	handler := commands.NewChangeOrderStatusCommandHandler(orderUoWFactory{s.factory}, s.dispatcher)
	o, err := handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return o
}

func (s *WorkflowTestSuite) createTable(name string) *table.OrderTable {
	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID(), name)
	s.Require().NoError(err)
	handler := commands.NewCreateOrderTableCommandHandler(tableUoWFactory{s.factory})
	t, err := handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return t
}

func (s *WorkflowTestSuite) occupy(
	newCommand func(kernel.UUID) (commands.ChangeTableOccupancyCommand, error),
	tableID kernel.UUID,
) {
	cmd, err := newCommand(tableID)
	s.Require().NoError(err)
	handler := commands.NewChangeTableOccupancyCommandHandler(tableUoWFactory{s.factory})
	_, err = handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
}

func (s *WorkflowTestSuite) guests(tableID kernel.UUID, n int) {
	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, n)
	s.Require().NoError(err)
	handler := commands.NewChangeNumberOfGuestsCommandHandler(tableUoWFactory{s.factory})
	_, err = handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
}

func (s *WorkflowTestSuite) getTable(id kernel.UUID) *table.OrderTable {
	t, err := s.factory.Create().OrderTableRepository().Get(s.T().Context(), id)
	s.Require().NoError(err)
	return t
}

func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func TestConcurrentTransactionsAreSerialized(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	ot, err := table.NewOrderTable(kernel.NewUUID(), "T1")
	require.NoError(t, err)
	require.NoError(t, factory.Create().OrderTableRepository().Add(ctx, ot))

	handler := commands.NewChangeNumberOfGuestsCommandHandler(tableUoWFactory{factory})
	sit := commands.NewChangeTableOccupancyCommandHandler(tableUoWFactory{factory})
	sitCmd, err := commands.NewSitTableCommand(ot.ID())
	require.NoError(t, err)
	_, err = sit.Handle(ctx, sitCmd)
	require.NoError(t, err)

	done := make(chan error, 10)
	for i := 1; i <= 10; i++ {
		go func(n int) {
			cmd, cmdErr := commands.NewChangeNumberOfGuestsCommand(ot.ID(), n)
			if cmdErr != nil {
				done <- cmdErr
				return
			}
			_, handleErr := handler.Handle(ctx, cmd)
			done <- handleErr
		}(i)
	}
	for range 10 {
		require.NoError(t, <-done)
	}

	stored, err := factory.Create().OrderTableRepository().Get(ctx, ot.ID())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stored.NumberOfGuests(), 1)
	assert.LessOrEqual(t, stored.NumberOfGuests(), 10)
}

package cmd

import (
	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
)

// CompositionRoot builds every use case handler over one storage backend and
// one delivery dispatcher.
type CompositionRoot struct {
	uowFactory  ports.UnitOfWorkFactory
	activeBoard queries.ActiveOrderReader
	dispatcher  ports.DeliveryDispatcher
}

func NewCompositionRoot(
	uowFactory ports.UnitOfWorkFactory,
	activeBoard queries.ActiveOrderReader,
	dispatcher ports.DeliveryDispatcher,
) CompositionRoot {
	return CompositionRoot{
		uowFactory:  uowFactory,
		activeBoard: activeBoard,
		dispatcher:  dispatcher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeTableOccupancyCommandHandler() commands.ChangeTableOccupancyCommandHandler {
	return commands.NewChangeTableOccupancyCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableGroupCommandHandler() commands.CreateTableGroupCommandHandler {
	return commands.NewCreateTableGroupCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTableGroupCommandHandler() commands.DeleteTableGroupCommandHandler {
	return commands.NewDeleteTableGroupCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	return commands.NewCreateMenuGroupCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateChangeMenuCommandHandler() commands.ChangeMenuCommandHandler {
	return commands.NewChangeMenuCommandHandler(c.menuUoWFactory())
}

// Read side handlers use repositories of a unit of work that is never begun,
// so each query runs outside a transaction.

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.activeBoard)
}

func (c *CompositionRoot) CreateGetAllOrderTablesQueryHandler() queries.GetAllOrderTablesQueryHandler {
	return queries.NewGetAllOrderTablesQueryHandler(c.uowFactory.Create().OrderTableRepository())
}

func (c *CompositionRoot) CreateGetAllMenuGroupsQueryHandler() queries.GetAllMenuGroupsQueryHandler {
	return queries.NewGetAllMenuGroupsQueryHandler(c.uowFactory.Create().MenuGroupRepository())
}

func (c *CompositionRoot) CreateGetAllMenusQueryHandler() queries.GetAllMenusQueryHandler {
	return queries.NewGetAllMenusQueryHandler(c.uowFactory.Create().MenuRepository())
}

// HTTPHandlers collects everything the HTTP server exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		CreateOrderTable:     c.CreateCreateOrderTableCommandHandler(),
		ChangeTableOccupancy: c.CreateChangeTableOccupancyCommandHandler(),
		ChangeNumberOfGuests: c.CreateChangeNumberOfGuestsCommandHandler(),
		CreateTableGroup:     c.CreateCreateTableGroupCommandHandler(),
		DeleteTableGroup:     c.CreateDeleteTableGroupCommandHandler(),
		CreateMenuGroup:      c.CreateCreateMenuGroupCommandHandler(),
		CreateMenu:           c.CreateCreateMenuCommandHandler(),
		ChangeMenu:           c.CreateChangeMenuCommandHandler(),
		GetAllOrders:         c.CreateGetAllOrdersQueryHandler(),
		GetActiveOrders:      c.CreateGetActiveOrdersQueryHandler(),
		GetAllOrderTables:    c.CreateGetAllOrderTablesQueryHandler(),
		GetAllMenuGroups:     c.CreateGetAllMenuGroupsQueryHandler(),
		GetAllMenus:          c.CreateGetAllMenusQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrderTables handles GET /api/v1/order-tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.getAllOrderTablesHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrderTablesQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.OrderTable, 0, len(tables))
	for _, t := range tables {
		response = append(response, toOrderTable(t))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderTable handles POST /api/v1/order-tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var body servers.CreateOrderTableJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return problem(ctx, err)
	}

	t, err := s.createOrderTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderTable(queries.NewOrderTableResponse(t)))
}

// SitOrderTable handles PUT /api/v1/order-tables/{tableId}/sit.
func (s *Server) SitOrderTable(ctx echo.Context, tableId servers.TableId) error {
	return s.changeTableOccupancy(ctx, tableId, commands.NewSitTableCommand)
}

// ClearOrderTable handles PUT /api/v1/order-tables/{tableId}/clear.
func (s *Server) ClearOrderTable(ctx echo.Context, tableId servers.TableId) error {
	return s.changeTableOccupancy(ctx, tableId, commands.NewClearTableCommand)
}

func (s *Server) changeTableOccupancy(
	ctx echo.Context,
	tableId servers.TableId,
	newCommand func(kernel.UUID) (commands.ChangeTableOccupancyCommand, error),
) error {
	id, err := toKernelUUID(tableId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return problem(ctx, err)
	}

	t, err := s.changeTableOccupancyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTable(queries.NewOrderTableResponse(t)))
}

// ChangeNumberOfGuests handles PUT /api/v1/order-tables/{tableId}/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context, tableId servers.TableId) error {
	var body servers.ChangeNumberOfGuestsJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	id, err := toKernelUUID(tableId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(id, body.NumberOfGuests)
	if err != nil {
		return problem(ctx, err)
	}

	t, err := s.changeNumberOfGuestsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTable(queries.NewOrderTableResponse(t)))
}

// CreateTableGroup handles POST /api/v1/table-groups.
func (s *Server) CreateTableGroup(ctx echo.Context) error {
	var body servers.CreateTableGroupJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	tableIDs, err := toKernelUUIDs(body.OrderTables)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewCreateTableGroupCommand(kernel.NewUUID(), tableIDs)
	if err != nil {
		return problem(ctx, err)
	}

	group, err := s.createTableGroupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toTableGroup(group))
}

// DeleteTableGroup handles DELETE /api/v1/table-groups/{tableGroupId}.
func (s *Server) DeleteTableGroup(ctx echo.Context, tableGroupId openapi_types.UUID) error {
	id, err := toKernelUUID(tableGroupId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewDeleteTableGroupCommand(id)
	if err != nil {
		return problem(ctx, err)
	}

	if err = s.deleteTableGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderTable(r queries.OrderTableResponse) servers.OrderTable {
	return servers.OrderTable{
		Id:             r.ID.Bytes(),
		Name:           r.Name,
		NumberOfGuests: r.NumberOfGuests,
		Empty:          r.Empty,
		TableGroupId:   optionalUUID(r.TableGroupID),
	}
}

func toTableGroup(g *table.TableGroup) servers.TableGroup {
	r := queries.NewTableGroupResponse(g)
	tableIDs := make([]openapi_types.UUID, 0, len(r.TableIDs))
	for _, id := range r.TableIDs {
		tableIDs = append(tableIDs, id.Bytes())
	}

	return servers.TableGroup{
		Id:          r.ID.Bytes(),
		OrderTables: tableIDs,
		CreatedAt:   r.CreatedAt,
	}
}

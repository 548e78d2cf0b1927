package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/generated/servers"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	createOrderTableHandler     commands.CreateOrderTableCommandHandler
	changeTableOccupancyHandler commands.ChangeTableOccupancyCommandHandler
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler
	createTableGroupHandler     commands.CreateTableGroupCommandHandler
	deleteTableGroupHandler     commands.DeleteTableGroupCommandHandler
	createMenuGroupHandler      commands.CreateMenuGroupCommandHandler
	createMenuHandler           commands.CreateMenuCommandHandler
	changeMenuHandler           commands.ChangeMenuCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getAllOrderTablesHandler queries.GetAllOrderTablesQueryHandler
	getAllMenuGroupsHandler  queries.GetAllMenuGroupsQueryHandler
	getAllMenusHandler       queries.GetAllMenusQueryHandler
}

// Handlers groups every use case the server exposes.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	CreateOrderTable     commands.CreateOrderTableCommandHandler
	ChangeTableOccupancy commands.ChangeTableOccupancyCommandHandler
	ChangeNumberOfGuests commands.ChangeNumberOfGuestsCommandHandler
	CreateTableGroup     commands.CreateTableGroupCommandHandler
	DeleteTableGroup     commands.DeleteTableGroupCommandHandler
	CreateMenuGroup      commands.CreateMenuGroupCommandHandler
	CreateMenu           commands.CreateMenuCommandHandler
	ChangeMenu           commands.ChangeMenuCommandHandler

	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetActiveOrders   queries.GetActiveOrdersQueryHandler
	GetAllOrderTables queries.GetAllOrderTablesQueryHandler
	GetAllMenuGroups  queries.GetAllMenuGroupsQueryHandler
	GetAllMenus       queries.GetAllMenusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:          h.CreateOrder,
		changeOrderStatusHandler:    h.ChangeOrderStatus,
		createOrderTableHandler:     h.CreateOrderTable,
		changeTableOccupancyHandler: h.ChangeTableOccupancy,
		changeNumberOfGuestsHandler: h.ChangeNumberOfGuests,
		createTableGroupHandler:     h.CreateTableGroup,
		deleteTableGroupHandler:     h.DeleteTableGroup,
		createMenuGroupHandler:      h.CreateMenuGroup,
		createMenuHandler:           h.CreateMenu,
		changeMenuHandler:           h.ChangeMenu,
		getAllOrdersHandler:         h.GetAllOrders,
		getActiveOrdersHandler:      h.GetActiveOrders,
		getAllOrderTablesHandler:    h.GetAllOrderTables,
		getAllMenuGroupsHandler:     h.GetAllMenuGroups,
		getAllMenusHandler:          h.GetAllMenus,
	}
}

// problem writes err as a servers.Error. Invalid arguments are 400, missing
// objects 404, illegal state transitions 409 and everything else 500.
func problem(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errs.IsInvalidArgument(err):
		status = http.StatusBadRequest
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	case errs.IsIllegalState(err):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromCtx(ctx.Request().Context()).Error("request failed",
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		k, err := toKernelUUID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

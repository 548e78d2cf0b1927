package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return problem(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(o)))
}

func newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	orderType, err := order.ParseType(string(body.OrderType))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lineItems := make([]commands.OrderLineItemRequest, 0, len(body.OrderLineItems))
	for _, li := range body.OrderLineItems {
		menuID, idErr := toKernelUUID(li.MenuId)
		if idErr != nil {
			return commands.CreateOrderCommand{}, idErr
		}
		price, priceErr := kernel.NewMoneyFromString(li.Price)
		if priceErr != nil {
			return commands.CreateOrderCommand{}, priceErr
		}
		lineItems = append(lineItems, commands.OrderLineItemRequest{
			MenuID:   menuID,
			Quantity: li.Quantity,
			Price:    price,
		})
	}

	var tableID *kernel.UUID
	if body.OrderTableId != nil {
		id, idErr := toKernelUUID(*body.OrderTableId)
		if idErr != nil {
			return commands.CreateOrderCommand{}, idErr
		}
		tableID = &id
	}

	var address string
	if body.DeliveryAddress != nil {
		address = *body.DeliveryAddress
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), orderType, lineItems, tableID, address)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	board, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.ActiveOrder, 0, len(board))
	for _, o := range board {
		response = append(response, servers.ActiveOrder{
			Id:           o.ID.Bytes(),
			OrderType:    servers.OrderType(o.Type.String()),
			OrderStatus:  servers.OrderStatus(o.Status.String()),
			OrderTableId: optionalUUID(o.TableID),
			ItemCount:    o.ItemCount,
			TotalAmount:  o.TotalAmount.String(),
			OrderedAt:    o.OrderedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderId, commands.NewAcceptOrderCommand)
}

// ServeOrder handles PUT /api/v1/orders/{orderId}/serve.
func (s *Server) ServeOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderId, commands.NewServeOrderCommand)
}

// StartOrderDelivery handles PUT /api/v1/orders/{orderId}/start-delivery.
func (s *Server) StartOrderDelivery(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderId, commands.NewStartDeliveryCommand)
}

// CompleteOrderDelivery handles PUT /api/v1/orders/{orderId}/complete-delivery.
func (s *Server) CompleteOrderDelivery(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderId, commands.NewCompleteDeliveryCommand)
}

// CompleteOrder handles PUT /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderId, commands.NewCompleteOrderCommand)
}

func (s *Server) changeOrderStatus(
	ctx echo.Context,
	orderId servers.OrderId,
	newCommand func(kernel.UUID) (commands.ChangeOrderStatusCommand, error),
) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return problem(ctx, err)
	}

	o, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

func toOrder(r queries.OrderResponse) servers.Order {
	items := make([]servers.OrderLineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, servers.OrderLineItem{
			Seq:      li.Seq,
			MenuId:   li.MenuID.Bytes(),
			Quantity: li.Quantity,
			Price:    li.Price.String(),
			Amount:   li.Amount.String(),
		})
	}

	var address *string
	if r.DeliveryAddress != "" {
		a := r.DeliveryAddress
		address = &a
	}

	return servers.Order{
		Id:              r.ID.Bytes(),
		OrderType:       servers.OrderType(r.Type.String()),
		OrderStatus:     servers.OrderStatus(r.Status.String()),
		OrderedAt:       r.OrderedAt,
		OrderTableId:    optionalUUID(r.TableID),
		DeliveryAddress: address,
		OrderLineItems:  items,
		TotalAmount:     r.TotalAmount.String(),
	}
}

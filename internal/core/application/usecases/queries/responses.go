package queries

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID              kernel.UUID
	Type            order.Type
	Status          order.Status
	OrderedAt       time.Time
	TableID         *kernel.UUID
	DeliveryAddress string
	LineItems       []OrderLineItemResponse
	TotalAmount     decimal.Decimal
}

type OrderLineItemResponse struct {
	Seq      int
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
	Amount   decimal.Decimal
}

func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, OrderLineItemResponse{
			Seq:      item.Seq(),
			MenuID:   item.MenuID(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
			Amount:   item.Amount(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		Type:            o.Type(),
		Status:          o.Status(),
		OrderedAt:       o.OrderedAt(),
		TableID:         o.TableID(),
		DeliveryAddress: o.DeliveryAddress().String(),
		LineItems:       items,
		TotalAmount:     o.TotalAmount(),
	}
}

// ActiveOrderResponse is one row of the order board.
type ActiveOrderResponse struct {
	ID          kernel.UUID
	Type        order.Type
	Status      order.Status
	TableID     *kernel.UUID
	ItemCount   int
	TotalAmount decimal.Decimal
	OrderedAt   time.Time
}

func NewActiveOrderResponse(o *order.Order) ActiveOrderResponse {
	return ActiveOrderResponse{
		ID:          o.ID(),
		Type:        o.Type(),
		Status:      o.Status(),
		TableID:     o.TableID(),
		ItemCount:   len(o.LineItems()),
		TotalAmount: o.TotalAmount(),
		OrderedAt:   o.OrderedAt(),
	}
}

type MenuResponse struct {
	ID          kernel.UUID
	Name        string
	Price       decimal.Decimal
	MenuGroupID kernel.UUID
	Displayed   bool
}

func NewMenuResponse(m *menu.Menu) MenuResponse {
	return MenuResponse{
		ID:          m.ID(),
		Name:        m.Name(),
		Price:       m.Price().Decimal(),
		MenuGroupID: m.MenuGroupID(),
		Displayed:   m.IsDisplayed(),
	}
}

type MenuGroupResponse struct {
	ID   kernel.UUID
	Name string
}

func NewMenuGroupResponse(g *menu.MenuGroup) MenuGroupResponse {
	return MenuGroupResponse{
		ID:   g.ID(),
		Name: g.Name(),
	}
}

type OrderTableResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Empty          bool
	TableGroupID   *kernel.UUID
}

func NewOrderTableResponse(t *table.OrderTable) OrderTableResponse {
	return OrderTableResponse{
		ID:             t.ID(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
		TableGroupID:   t.TableGroupID(),
	}
}

type TableGroupResponse struct {
	ID        kernel.UUID
	TableIDs  []kernel.UUID
	CreatedAt time.Time
}

func NewTableGroupResponse(g *table.TableGroup) TableGroupResponse {
	return TableGroupResponse{
		ID:        g.ID(),
		TableIDs:  g.TableIDs(),
		CreatedAt: g.CreatedAt(),
	}
}

// Package orderrepo persists the order aggregate and its line items with GORM.
// Line items live in a child table keyed by (order_id, seq).
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Type            int                `gorm:"type:smallint;not null"`
	Status          int                `gorm:"type:smallint;not null;index"`
	TableID         *uuid.UUID         `gorm:"type:uuid;index"`
	DeliveryAddress string             `gorm:"type:varchar(512)"`
	OrderedAt       time.Time          `gorm:"not null;index"`
	LineItems       []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO stores one line item. Price is the menu price captured when
// the order was placed.
type OrderLineItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq      int             `gorm:"primaryKey;autoIncrement:false"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var tableID *uuid.UUID
	if id := o.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := make([]OrderLineItemDTO, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, OrderLineItemDTO{
			OrderID:  orderID,
			Seq:      item.Seq(),
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		Type:            int(o.Type()),
		Status:          int(o.Status()),
		TableID:         tableID,
		DeliveryAddress: o.DeliveryAddress().String(),
		OrderedAt:       o.OrderedAt(),
		LineItems:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	var address kernel.Address
	if dto.DeliveryAddress != "" {
		address, err = kernel.NewAddress(dto.DeliveryAddress)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.Type),
		order.Status(dto.Status),
		items,
		tableID,
		address,
		dto.OrderedAt,
	)
}

func lineItemToDomain(dto OrderLineItemDTO) (*order.LineItem, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(dto.Seq, menuID, dto.Quantity, price)
}

// Package memory keeps every aggregate in process memory behind the same ports
// as the PostgreSQL adapter. It backs unit tests and STORAGE=memory.
//
// Aggregates are stored as plain records and rebuilt on every read, so a handler
// mutating a loaded aggregate changes nothing until it calls Update. A unit of
// work holds the store lock from Begin until Commit or Rollback and writes to a
// copy of the data, which Commit swaps in.
package memory

import (
	"errors"
	"sync"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
)

var ErrNoTransaction = errors.New("memory: no transaction in progress")

// Store is the shared in-memory database. Pass it by reference; the zero value
// is not usable.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

type dataset struct {
	orders      map[kernel.UUID]orderRecord
	menus       map[kernel.UUID]menuRecord
	menuGroups  map[kernel.UUID]menuGroupRecord
	orderTables map[kernel.UUID]tableRecord
	tableGroups map[kernel.UUID]tableGroupRecord
}

func newDataset() *dataset {
	return &dataset{
		orders:      make(map[kernel.UUID]orderRecord),
		menus:       make(map[kernel.UUID]menuRecord),
		menuGroups:  make(map[kernel.UUID]menuGroupRecord),
		orderTables: make(map[kernel.UUID]tableRecord),
		tableGroups: make(map[kernel.UUID]tableGroupRecord),
	}
}

// clone copies the maps. Records are values and their slices are never
// modified after creation, so sharing them is safe.
func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.orders {
		c.orders[k] = v
	}
	for k, v := range d.menus {
		c.menus[k] = v
	}
	for k, v := range d.menuGroups {
		c.menuGroups[k] = v
	}
	for k, v := range d.orderTables {
		c.orderTables[k] = v
	}
	for k, v := range d.tableGroups {
		c.tableGroups[k] = v
	}
	return c
}

type lineItemRecord struct {
	seq      int
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money
}

type orderRecord struct {
	id              kernel.UUID
	orderType       order.Type
	status          order.Status
	tableID         *kernel.UUID
	deliveryAddress kernel.Address
	orderedAt       time.Time
	lineItems       []lineItemRecord
}

func orderToRecord(o *order.Order) orderRecord {
	items := make([]lineItemRecord, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, lineItemRecord{
			seq:      item.Seq(),
			menuID:   item.MenuID(),
			quantity: item.Quantity(),
			price:    item.Price(),
		})
	}

	var tableID *kernel.UUID
	if o.TableID() != nil {
		id := *o.TableID()
		tableID = &id
	}

	return orderRecord{
		id:              o.ID(),
		orderType:       o.Type(),
		status:          o.Status(),
		tableID:         tableID,
		deliveryAddress: o.DeliveryAddress(),
		orderedAt:       o.OrderedAt(),
		lineItems:       items,
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	items := make([]*order.LineItem, 0, len(r.lineItems))
	for _, li := range r.lineItems {
		item, err := order.RestoreLineItem(li.seq, li.menuID, li.quantity, li.price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(r.id, r.orderType, r.status, items, r.tableID, r.deliveryAddress, r.orderedAt)
}

type menuRecord struct {
	id          kernel.UUID
	name        string
	price       kernel.Money
	menuGroupID kernel.UUID
	displayed   bool
}

func menuToRecord(m *menu.Menu) menuRecord {
	return menuRecord{
		id:          m.ID(),
		name:        m.Name(),
		price:       m.Price(),
		menuGroupID: m.MenuGroupID(),
		displayed:   m.IsDisplayed(),
	}
}

func (r menuRecord) toDomain() (*menu.Menu, error) {
	return menu.RestoreMenu(r.id, r.name, r.price, r.menuGroupID, r.displayed)
}

type menuGroupRecord struct {
	id   kernel.UUID
	name string
}

func (r menuGroupRecord) toDomain() (*menu.MenuGroup, error) {
	return menu.RestoreMenuGroup(r.id, r.name)
}

type tableRecord struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	empty          bool
	tableGroupID   *kernel.UUID
}

func tableToRecord(t *table.OrderTable) tableRecord {
	var groupID *kernel.UUID
	if t.TableGroupID() != nil {
		id := *t.TableGroupID()
		groupID = &id
	}

	return tableRecord{
		id:             t.ID(),
		name:           t.Name(),
		numberOfGuests: t.NumberOfGuests(),
		empty:          t.IsEmpty(),
		tableGroupID:   groupID,
	}
}

func (r tableRecord) toDomain() (*table.OrderTable, error) {
	return table.RestoreOrderTable(r.id, r.name, r.numberOfGuests, r.empty, r.tableGroupID)
}

type tableGroupRecord struct {
	id        kernel.UUID
	createdAt time.Time
}

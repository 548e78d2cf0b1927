package memory

import (
	"context"
	"sort"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.orders[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("order", errDuplicateKey)
		}
		d.orders[aggregate.ID()] = orderToRecord(aggregate)
		return nil
	})
}

// Update stores the status and keeps the line items recorded by Add.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		stored, ok := d.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		updated := orderToRecord(aggregate)
		updated.lineItems = stored.lineItems
		d.orders[aggregate.ID()] = updated
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.uow.run(func(d *dataset) error {
		rec, ok := d.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}

		var err error
		found, err = rec.toDomain()
		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// GetAll returns the orders oldest first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.uow.run(func(d *dataset) error {
		records := sortedOrders(d)
		orders = make([]*order.Order, 0, len(records))
		for _, rec := range records {
			o, err := rec.toDomain()
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) ExistsByTablesAndStatusNot(
	_ context.Context,
	tableIDs []kernel.UUID,
	status order.Status,
) (bool, error) {
	if len(tableIDs) == 0 {
		return false, nil
	}

	wanted := make(map[kernel.UUID]struct{}, len(tableIDs))
	for _, id := range tableIDs {
		wanted[id] = struct{}{}
	}

	var exists bool
	err := r.uow.run(func(d *dataset) error {
		for _, rec := range d.orders {
			if rec.tableID == nil || rec.status == status {
				continue
			}
			if _, ok := wanted[*rec.tableID]; ok {
				exists = true
				return nil
			}
		}
		return nil
	})

	return exists, err
}

// ActiveOrderReader serves the order board from a Store.
type ActiveOrderReader struct {
	store *Store
}

func NewActiveOrderReader(store *Store) *ActiveOrderReader {
	return &ActiveOrderReader{store: store}
}

func (r *ActiveOrderReader) ReadActiveOrders(_ context.Context) ([]queries.ActiveOrderResponse, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	board := make([]queries.ActiveOrderResponse, 0)
	for _, rec := range sortedOrders(r.store.data) {
		if rec.status.IsCompleted() {
			continue
		}

		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		board = append(board, queries.NewActiveOrderResponse(o))
	}

	return board, nil
}

func sortedOrders(d *dataset) []orderRecord {
	records := make([]orderRecord, 0, len(d.orders))
	for _, rec := range d.orders {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].orderedAt.Equal(records[j].orderedAt) {
			return records[i].id.String() < records[j].id.String()
		}
		return records[i].orderedAt.Before(records[j].orderedAt)
	})
	return records
}

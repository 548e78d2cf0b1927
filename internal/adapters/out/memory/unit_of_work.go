package memory

import (
	"context"
	"errors"

	"kitchenpos/internal/core/ports"
)

var (
	errDuplicateKey     = errors.New("memory: duplicate key")
	errMissingReference = errors.New("memory: referenced row does not exist")
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes transactions on its Store. Outside a transaction every
// repository call takes the store lock for its own duration.
type UnitOfWork struct {
	store *Store
	tx    *dataset
}

// Begin locks the store and starts writing to a copy of its data. Calling it
// twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.tx = uow.store.data.clone()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.store.data = uow.tx
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards the copy. After Commit it returns ErrNoTransaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{uow: uow}
}

func (uow *UnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return &MenuGroupRepository{uow: uow}
}

func (uow *UnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return &OrderTableRepository{uow: uow}
}

func (uow *UnitOfWork) TableGroupRepository() ports.TableGroupRepository {
	return &TableGroupRepository{uow: uow}
}

// run hands fn the transaction copy, or the live data under the store lock.
func (uow *UnitOfWork) run(fn func(d *dataset) error) error {
	if uow.tx != nil {
		return fn(uow.tx)
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return fn(uow.store.data)
}

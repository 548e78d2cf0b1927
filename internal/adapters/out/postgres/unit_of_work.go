// Package postgres provides the GORM implementation of the unit of work.
// Every repository handed out by a GormUnitOfWork shares its transaction once
// Begin was called, so a command handler commits or rolls back all writes at once.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.TableGroupRepository().Add(ctx, group); err != nil {
//	    return err
//	}
//	for _, t := range tables {
//	    if err := uow.OrderTableRepository().Update(ctx, t); err != nil {
//	        return err
//	    }
//	}
//
//	return uow.Commit(ctx)
//
// Key Features:
//   - One transaction shared by every repository obtained from the unit of work
//   - Repositories used before Begin run on the plain connection (read paths)
//   - Aggregates written inside the transaction are tracked until Rollback
//
// Multi-Repository Transactions:
//
// Grouping tables writes the table group and every member table. If any table
// update fails the deferred Rollback discards the group row as well, so no
// partially grouped set of tables is ever visible.
//
// Error Handling:
//   - Return the repository error as is; the deferred Rollback cleans up
//   - The Rollback error after a successful Commit is gorm.ErrInvalidTransaction
//     and is safe to ignore
//
// A GormUnitOfWork is not safe for concurrent use; create one per operation.
package postgres

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written through the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to an open connection pool.
//
// Parameters:
//   - db: GORM connection, typically from gorm.Open with the postgres driver
//
// Returns:
//   - *GormUnitOfWorkFactory: factory whose Create never fails
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across repositories and
// records every aggregate written during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
//
// Parameters:
//   - ctx: bounds the lifetime of the whole transaction, not only BEGIN
//
// Returns:
//   - error: the driver error if BEGIN failed; the unit of work stays unopened
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes every write since Begin durable and closes the transaction.
//
// Returns:
//   - error: gorm.ErrInvalidTransaction when no transaction is open, otherwise
//     the COMMIT error (constraint violations deferred to commit end up here)
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which
// is what the deferred rollback after a successful Commit sees.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current transaction,
// or to the plain connection before Begin. Call the accessor after Begin when
// the writes must take part in the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MenuRepository is bound like OrderRepository.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

// MenuGroupRepository is bound like OrderRepository.
func (uow *GormUnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return menurepo.NewGormMenuGroupRepository(uow.conn(), uow)
}

// OrderTableRepository is bound like OrderRepository.
func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return tablerepo.NewGormOrderTableRepository(uow.conn(), uow)
}

// TableGroupRepository is bound like OrderRepository.
func (uow *GormUnitOfWork) TableGroupRepository() ports.TableGroupRepository {
	return tablerepo.NewGormTableGroupRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since the unit of work was
// created, in write order. A rollback forgets them.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	tracked := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(tracked, uow.trackedAggregates)
	return tracked
}

// conn returns the open transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

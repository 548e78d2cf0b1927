package orderrepo_test

import (
	"errors"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/pgutil"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGormOrderRepository_ExistsByTablesAndStatusNot(t *testing.T) {
	tableIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	t.Run("counts open orders at tables", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := orderrepo.NewGormOrderRepository(db, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE table_id = ANY\(\$1\) AND status <> \$2`).
			WithArgs(pgutil.UUIDArray(tableIDs), int(order.Completed)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByTablesAndStatusNot(t.Context(), tableIDs, order.Completed)

		require.NoError(t, err)
		assert.True(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no open orders", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := orderrepo.NewGormOrderRepository(db, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByTablesAndStatusNot(t.Context(), tableIDs, order.Completed)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty table list skips the query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := orderrepo.NewGormOrderRepository(db, nil)

		exists, err := repo.ExistsByTablesAndStatusNot(t.Context(), nil, order.Completed)

		require.NoError(t, err)
		assert.False(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := orderrepo.NewGormOrderRepository(db, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).WillReturnError(errors.New("db error"))

		_, err := repo.ExistsByTablesAndStatusNot(t.Context(), tableIDs, order.Completed)

		require.EqualError(t, err, "db error")
	})
}

func TestGormOrderRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := orderrepo.NewGormOrderRepository(db, nil)

	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("1000"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Takeout, []*order.LineItem{item}, nil, kernel.Address{}, time.Now())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err = repo.Update(t.Context(), o)

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormActiveOrderReader_ReadActiveOrders(t *testing.T) {
	const boardQuery = `SELECT o.id, o.type, o.status, o.table_id, o.ordered_at, .* ` +
		`FROM orders o LEFT JOIN order_line_items li ON li.order_id = o.id ` +
		`WHERE o.status <> \$1 GROUP BY o.id ORDER BY o.ordered_at, o.id`
	columns := []string{"id", "type", "status", "table_id", "ordered_at", "item_count", "total_amount"}

	t.Run("maps board rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		reader := orderrepo.NewGormActiveOrderReader(db)

		dineInID := kernel.NewUUID()
		tableID := kernel.NewUUID()
		deliveryID := kernel.NewUUID()
		orderedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(boardQuery).
			WithArgs(int(order.Completed)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(dineInID.String(), int(order.DineIn), int(order.Served), tableID.String(), orderedAt, 2, "32000.00").
				AddRow(deliveryID.String(), int(order.Delivery), int(order.Delivering), nil, orderedAt.Add(time.Minute), 1, "12500.50"))

		board, err := reader.ReadActiveOrders(t.Context())

		require.NoError(t, err)
		require.Len(t, board, 2)

		assert.Equal(t, dineInID, board[0].ID)
		assert.Equal(t, order.DineIn, board[0].Type)
		assert.Equal(t, order.Served, board[0].Status)
		require.NotNil(t, board[0].TableID)
		assert.True(t, board[0].TableID.IsEqual(tableID))
		assert.Equal(t, 2, board[0].ItemCount)
		assert.Equal(t, "32000", board[0].TotalAmount.String())

		assert.Equal(t, deliveryID, board[1].ID)
		assert.Nil(t, board[1].TableID)
		assert.Equal(t, "12500.5", board[1].TotalAmount.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty board", func(t *testing.T) {
		db, mock := newMockDB(t)
		reader := orderrepo.NewGormActiveOrderReader(db)

		mock.ExpectQuery(boardQuery).WillReturnRows(sqlmock.NewRows(columns))

		board, err := reader.ReadActiveOrders(t.Context())

		require.NoError(t, err)
		assert.NotNil(t, board)
		assert.Empty(t, board)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		reader := orderrepo.NewGormActiveOrderReader(db)

		mock.ExpectQuery(boardQuery).WillReturnError(errors.New("db error"))

		board, err := reader.ReadActiveOrders(t.Context())

		require.EqualError(t, err, "db error")
		assert.Nil(t, board)
	})
}

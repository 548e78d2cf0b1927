package table_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupiedTable(t *testing.T) *table.OrderTable {
	t.Helper()
	tbl, err := table.RestoreOrderTable(kernel.NewUUID(), "T1", 4, false, nil)
	require.NoError(t, err)
	return tbl
}

func TestNewOrderTable(t *testing.T) {
	t.Run("should create empty table", func(t *testing.T) {
		id := kernel.NewUUID()

		tbl, err := table.NewOrderTable(id, " Table 9 ")

		require.NoError(t, err)
		require.NoError(t, tbl.Validate())
		assert.True(t, tbl.ID().IsEqual(id))
		assert.Equal(t, "Table 9", tbl.Name())
		assert.True(t, tbl.IsEmpty())
		assert.Equal(t, 0, tbl.NumberOfGuests())
		assert.False(t, tbl.IsGrouped())
		assert.Nil(t, tbl.TableGroupID())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := table.NewOrderTable(kernel.NewUUID(), "")
		require.ErrorIs(t, err, table.ErrNameIsRequired)
	})

	t.Run("should reject negative guests on restore", func(t *testing.T) {
		_, err := table.RestoreOrderTable(kernel.NewUUID(), "T1", -1, false, nil)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("should copy group id on restore", func(t *testing.T) {
		groupID := kernel.NewUUID()
		tbl, err := table.RestoreOrderTable(kernel.NewUUID(), "T1", 0, false, &groupID)
		require.NoError(t, err)

		groupID = kernel.NewUUID()
		assert.False(t, tbl.TableGroupID().IsEqual(groupID))
	})
}

func TestOrderTable_SitAndClear(t *testing.T) {
	tbl, err := table.NewOrderTable(kernel.NewUUID(), "T1")
	require.NoError(t, err)

	tbl.Sit()
	assert.False(t, tbl.IsEmpty())

	require.NoError(t, tbl.ChangeNumberOfGuests(3))
	require.NoError(t, tbl.Clear())
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, 0, tbl.NumberOfGuests())
}

func TestOrderTable_ClearGrouped(t *testing.T) {
	groupID := kernel.NewUUID()
	tbl, err := table.RestoreOrderTable(kernel.NewUUID(), "T1", 2, false, &groupID)
	require.NoError(t, err)

	err = tbl.Clear()

	require.Error(t, err)
	assert.True(t, errs.IsIllegalState(err))
	assert.False(t, tbl.IsEmpty())

	tbl.Vacate()
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, 0, tbl.NumberOfGuests())
	assert.True(t, tbl.IsGrouped())
}

func TestOrderTable_ChangeNumberOfGuests(t *testing.T) {
	t.Run("should change guests on occupied table", func(t *testing.T) {
		tbl := occupiedTable(t)

		require.NoError(t, tbl.ChangeNumberOfGuests(0))
		assert.Equal(t, 0, tbl.NumberOfGuests())
	})

	t.Run("should reject negative guests", func(t *testing.T) {
		tbl := occupiedTable(t)

		err := tbl.ChangeNumberOfGuests(-1)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Equal(t, 4, tbl.NumberOfGuests())
	})

	t.Run("should reject empty table", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), "T1")

		err := tbl.ChangeNumberOfGuests(2)

		require.Error(t, err)
		assert.True(t, errs.IsIllegalState(err))
	})
}

func TestOrderTable_Groups(t *testing.T) {
	t.Run("should join and leave group", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), "T1")
		groupID := kernel.NewUUID()

		require.NoError(t, tbl.JoinGroup(groupID))
		assert.True(t, tbl.TableGroupID().IsEqual(groupID))
		assert.False(t, tbl.IsEmpty())

		tbl.LeaveGroup()
		assert.False(t, tbl.IsGrouped())
		assert.False(t, tbl.IsEmpty())
	})

	t.Run("should reject occupied table", func(t *testing.T) {
		err := occupiedTable(t).JoinGroup(kernel.NewUUID())

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("should reject grouped table", func(t *testing.T) {
		groupID := kernel.NewUUID()
		tbl, _ := table.RestoreOrderTable(kernel.NewUUID(), "T1", 0, true, &groupID)

		err := tbl.JoinGroup(kernel.NewUUID())

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.True(t, tbl.TableGroupID().IsEqual(groupID))
	})
}

func TestNewTableGroup(t *testing.T) {
	createdAt := time.Now()
	a, b := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should create group", func(t *testing.T) {
		id := kernel.NewUUID()

		g, err := table.NewTableGroup(id, []kernel.UUID{a, b}, createdAt)

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.ID().IsEqual(id))
		assert.Equal(t, createdAt, g.CreatedAt())
		assert.Equal(t, []kernel.UUID{a, b}, g.TableIDs())
	})

	t.Run("should need two distinct tables", func(t *testing.T) {
		for _, ids := range [][]kernel.UUID{nil, {a}, {a, a}} {
			_, err := table.NewTableGroup(kernel.NewUUID(), ids, createdAt)

			require.Error(t, err)
			assert.True(t, errs.IsInvalidArgument(err))
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var g table.TableGroup
		assert.Equal(t, table.ErrTableGroupIsNotConstructed, g.Validate())
	})
}

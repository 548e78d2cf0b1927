package menu_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenu(t *testing.T) {
	groupID := kernel.NewUUID()

	t.Run("should create menu", func(t *testing.T) {
		id := kernel.NewUUID()

		m, err := menu.NewMenu(id, "  Fried chicken ", kernel.MustMoney("16000"), groupID, true)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, "Fried chicken", m.Name())
		assert.True(t, m.Price().IsEqual(kernel.MustMoney("16000.00")))
		assert.True(t, m.MenuGroupID().IsEqual(groupID))
		assert.True(t, m.IsDisplayed())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		m, err := menu.NewMenu(kernel.NewUUID(), "Water", kernel.Zero, groupID, false)

		require.NoError(t, err)
		assert.Equal(t, "0", m.Price().String())
		assert.False(t, m.IsDisplayed())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := menu.NewMenu(kernel.NewUUID(), name, kernel.MustMoney("1"), groupID, true)

			require.ErrorIs(t, err, menu.ErrNameIsRequired)
			assert.True(t, errs.IsInvalidArgument(err))
		}
	})

	t.Run("should reject missing group and id together", func(t *testing.T) {
		_, err := menu.NewMenu(kernel.UUID{}, "Soup", kernel.MustMoney("1"), kernel.UUID{}, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "menu group")
	})
}

func TestMenu_Operations(t *testing.T) {
	m, err := menu.NewMenu(kernel.NewUUID(), "Noodles", kernel.MustMoney("9000"), kernel.NewUUID(), false)
	require.NoError(t, err)

	m.Display()
	assert.True(t, m.IsDisplayed())

	m.Hide()
	assert.False(t, m.IsDisplayed())

	m.ChangePrice(kernel.MustMoney("9500"))
	assert.Equal(t, "9500", m.Price().String())
}

func TestMenu_Validate(t *testing.T) {
	var nilMenu *menu.Menu
	assert.Equal(t, menu.ErrMenuIsNotConstructed, nilMenu.Validate())

	var zero menu.Menu
	assert.Equal(t, menu.ErrMenuIsNotConstructed, zero.Validate())
}

func TestNewMenuGroup(t *testing.T) {
	id := kernel.NewUUID()

	g, err := menu.NewMenuGroup(id, " Set menus ")
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.True(t, g.ID().IsEqual(id))
	assert.Equal(t, "Set menus", g.Name())

	_, err = menu.NewMenuGroup(kernel.NewUUID(), " ")
	require.ErrorIs(t, err, menu.ErrGroupNameIsRequired)

	_, err = menu.NewMenuGroup(kernel.UUID{}, "Drinks")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero menu.MenuGroup
	assert.Equal(t, menu.ErrMenuGroupIsNotConstructed, zero.Validate())
}

package kernel_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		a, err := kernel.NewAddress("  12 Baker Street ")

		require.NoError(t, err)
		assert.Equal(t, "12 Baker Street", a.String())
		require.NoError(t, a.Validate())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		for _, s := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewAddress(s)

			require.Error(t, err)
			assert.True(t, errs.IsInvalidArgument(err))
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a kernel.Address

		assert.True(t, a.IsZero())
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, a.Validate())
	})
}

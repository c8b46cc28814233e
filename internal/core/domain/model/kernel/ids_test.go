package kernel_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("valid id round-trips", func(t *testing.T) {
		id, err := kernel.NewOrderID("OrderId", "order-2026-0001")

		require.NoError(t, err)
		assert.Equal(t, "order-2026-0001", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("empty id is required", func(t *testing.T) {
		_, err := kernel.NewOrderID("OrderId", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("id longer than 50 is out of range", func(t *testing.T) {
		_, err := kernel.NewOrderID("OrderId", strings.Repeat("9", 51))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID
		require.ErrorIs(t, id.Validate(), kernel.ErrOrderIDIsNotConstructed)
	})
}

func TestNewOrderLineID(t *testing.T) {
	t.Run("valid id round-trips", func(t *testing.T) {
		id, err := kernel.NewOrderLineID("OrderLineId", "line-1")

		require.NoError(t, err)
		assert.Equal(t, "line-1", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("empty id is required", func(t *testing.T) {
		_, err := kernel.NewOrderLineID("OrderLineId", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("id longer than 50 is out of range", func(t *testing.T) {
		_, err := kernel.NewOrderLineID("OrderLineId", strings.Repeat("9", 51))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

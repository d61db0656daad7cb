package order_test

import (
	"testing"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	testCases := []struct {
		name     string
		order    order.Number
		dish     int64
		quantity int
		wantErr  error
	}{
		{name: "valid", order: 3, dish: 7, quantity: 2},
		{name: "max_quantity", order: 3, dish: 7, quantity: order.MaxQuantity},
		{name: "zero_quantity", order: 3, dish: 7, quantity: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "too_many", order: 3, dish: 7, quantity: 100, wantErr: errs.ErrValueIsOutOfRange},
		{name: "missing_dish", order: 3, dish: 0, quantity: 1, wantErr: errs.ErrValueIsInvalid},
		{name: "missing_order", order: 0, dish: 7, quantity: 1, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := order.NewLine(tc.order, tc.dish, tc.quantity)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, line.Validate())
			assert.Equal(t, tc.order, line.Order())
			assert.Equal(t, tc.dish, line.Dish())
			assert.Equal(t, tc.quantity, line.Quantity())
		})
	}
}

func TestLine_Merge(t *testing.T) {
	line, err := order.NewLine(1, 4, 2)
	require.NoError(t, err)

	merged, err := line.Merge(3)

	require.NoError(t, err)
	assert.Equal(t, 5, merged.Quantity())
	assert.Equal(t, 2, line.Quantity())
}

func TestTotal(t *testing.T) {
	_, ok := order.Total(nil)
	assert.False(t, ok)

	total, ok := order.Total([]order.CartItem{
		{DishNumber: 1, DishName: "Pad Thai", Price: kernel.MustNewPrice("58"), Quantity: 2},
		{DishNumber: 2, DishName: "Miso soup", Price: kernel.MustNewPrice("19.5"), Quantity: 1},
	})

	assert.True(t, ok)
	assert.True(t, total.Equal(decimal.RequireFromString("135.5")), total.String())
}

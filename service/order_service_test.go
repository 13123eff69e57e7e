package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"matchbook/orderbook"
	"matchbook/params"
)

func newTestService(t *testing.T, seedDepth int) *OrderService {
	t.Helper()
	cfg := params.Config{Symbol: "BTC", SeedDepth: seedDepth}
	svc, err := NewOrderService(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestNewOrderService(t *testing.T) {
	t.Run("blank symbol rejected", func(t *testing.T) {
		_, err := NewOrderService(params.Config{Symbol: " "}, zap.NewNop())
		var verr *orderbook.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("seeds both sides without crossing", func(t *testing.T) {
		svc := newTestService(t, 5)
		snap := svc.Book().Snapshot()

		require.Len(t, snap.Bids, 5)
		require.Len(t, snap.Asks, 5)
		// Best bid 5, best ask 6: the halves never matched each other.
		assert.Equal(t, "5", snap.Bids[0].Price.String())
		assert.Equal(t, "6", snap.Asks[0].Price.String())
		for _, lvl := range append(snap.Bids, snap.Asks...) {
			assert.True(t, lvl.Price.Equal(lvl.Quantity))
		}
	})

	t.Run("zero depth starts empty", func(t *testing.T) {
		svc := newTestService(t, 0)
		bids, asks := svc.Book().Depth()
		assert.Equal(t, 0, bids)
		assert.Equal(t, 0, asks)
	})
}

func TestNewOrderID(t *testing.T) {
	assert.NotEmpty(t, NewOrderID())
	assert.NotEqual(t, NewOrderID(), NewOrderID())
}

func TestPlaceAndCancelThroughService(t *testing.T) {
	svc := newTestService(t, 5)

	limit, err := orderbook.NewLimitOrder(NewOrderID(), decimal.NewFromInt(6), decimal.NewFromInt(9), orderbook.Buy)
	require.NoError(t, err)

	out, err := svc.PlaceNewOrder(limit)
	require.NoError(t, err)
	assert.Equal(t, "6", out.Matched.String())
	assert.Equal(t, "3", out.Rested.String())

	require.NoError(t, svc.CancelOrder(limit))

	var nferr *orderbook.OrderNotFoundError
	assert.ErrorAs(t, svc.CancelOrder(limit), &nferr)
}

func TestRenderBook(t *testing.T) {
	t.Run("seeded board", func(t *testing.T) {
		svc := newTestService(t, 2)
		board := svc.RenderBook()

		assert.Contains(t, board, "SELL")
		assert.Contains(t, board, "BUY")
		// Asks render worst to best, bids best to worst.
		assert.Less(t, strings.Index(board, "4:"), strings.Index(board, "3:"))
		assert.Less(t, strings.Index(board, "2:"), strings.Index(board, "1:"))
	})

	t.Run("never fails on an empty book", func(t *testing.T) {
		svc := newTestService(t, 0)
		assert.NotPanics(t, func() { _ = svc.RenderBook() })
	})
}

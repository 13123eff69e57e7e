package orderbook

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderSnapshot struct {
	ID       string
	Quantity decimal.Decimal
}

// LevelSnapshot captures one price level: its price, the aggregate
// quantity, and the queued orders in time priority.
type LevelSnapshot struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Orders   []OrderSnapshot
}

// Snapshot holds both sides best price first.
type Snapshot struct {
	Symbol string
	Bids   []LevelSnapshot
	Asks   []LevelSnapshot
}

// Snapshot reads both ladders without entering the command queue, so it
// is best-effort: a concurrent mutation may be observed mid-flight. The
// read degrades to a partial or empty view rather than failing.
func (b *Book) Snapshot() Snapshot {
	return Snapshot{
		Symbol: b.symbol,
		Bids:   snapshotLadder(b.bids),
		Asks:   snapshotLadder(b.asks),
	}
}

func snapshotLadder(ld ladder) (levels []LevelSnapshot) {
	// A torn tree walk can panic; keep whatever was collected.
	defer func() {
		_ = recover()
	}()
	ld.forEachLevel(func(lvl *priceLevel) bool {
		levels = append(levels, LevelSnapshot{
			Price: lvl.price,
			Quantity: lo.Reduce(lvl.orders, func(sum decimal.Decimal, o *Order, _ int) decimal.Decimal {
				return sum.Add(o.Quantity)
			}, decimal.Zero),
			Orders: lo.Map(lvl.orders, func(o *Order, _ int) OrderSnapshot {
				return OrderSnapshot{ID: o.ID, Quantity: o.Quantity}
			}),
		})
		return true
	})
	return levels
}

package orderbook

import "github.com/shopspring/decimal"

// Fill records one resting order consumed, fully or partially, by a sweep.
type Fill struct {
	MakerID  string
	Quantity decimal.Decimal
}

// FillOutcome reports what a Place did: quantity matched against resting
// liquidity, quantity rested into the book (always zero for market
// orders), quantity discarded for lack of liquidity, and the fills
// applied in execution order.
type FillOutcome struct {
	Matched  decimal.Decimal
	Rested   decimal.Decimal
	Unfilled decimal.Decimal
	Fills    []Fill
}

// sweep matches the aggressor against the opposite ladder in priority
// order, front of queue first within a level.
//
// A limit aggressor stops the whole sweep at the first non-crossing
// level: the ladder is priced best to worst, so no later level can cross
// either. A market aggressor takes every level until filled or the ladder
// is exhausted.
func sweep(aggressor *Order, opposite ladder) FillOutcome {
	out := FillOutcome{
		Matched:  decimal.Zero,
		Rested:   decimal.Zero,
		Unfilled: decimal.Zero,
	}
	for aggressor.HasRemaining() {
		lvl := opposite.bestLevel()
		if lvl == nil {
			break
		}
		if aggressor.Type == Limit && !aggressor.Crosses(lvl.price) {
			break
		}
		for aggressor.HasRemaining() && !lvl.empty() {
			resting := lvl.front()
			take := resting.Quantity
			if take.GreaterThan(aggressor.Quantity) {
				// Resting order outsizes the aggressor: partial
				// consume, aggressor is done.
				take = aggressor.Quantity
				resting.ReduceQuantity(take)
			} else {
				resting.ReduceQuantity(take)
				lvl.popFront()
			}
			aggressor.ReduceQuantity(take)
			out.Matched = out.Matched.Add(take)
			out.Fills = append(out.Fills, Fill{MakerID: resting.ID, Quantity: take})
		}
		opposite.removeLevelIfEmpty(lvl.price)
	}
	return out
}

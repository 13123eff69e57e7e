package orderbook

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/shopspring/decimal"
)

// priceLevel queues the resting orders sharing one price. Queue order is
// arrival order; matching always consumes from the front.
type priceLevel struct {
	price  decimal.Decimal
	orders []*Order
}

func (l *priceLevel) append(o *Order) {
	l.orders = append(l.orders, o)
}

func (l *priceLevel) front() *Order {
	return l.orders[0]
}

func (l *priceLevel) popFront() {
	l.orders = l.orders[1:]
}

// removeByID unlinks the order with the given id, keeping queue order for
// the rest. Linear scan; levels stay small under price-time priority.
func (l *priceLevel) removeByID(id string) bool {
	for i, o := range l.orders {
		if o.ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return true
		}
	}
	return false
}

func (l *priceLevel) empty() bool {
	return len(l.orders) == 0
}

// ladder is one side's price-ordered set of levels. The comparator policy
// fixes the priority direction, so the tree minimum is always the best
// price for that side.
type ladder struct {
	tree *rbt.Tree
}

func newBidLadder() ladder {
	return ladder{tree: rbt.NewWith(bidComparator)}
}

func newAskLadder() ladder {
	return ladder{tree: rbt.NewWith(askComparator)}
}

func (ld ladder) level(price decimal.Decimal) *priceLevel {
	if v, ok := ld.tree.Get(price); ok {
		return v.(*priceLevel)
	}
	return nil
}

func (ld ladder) ensureLevel(price decimal.Decimal) *priceLevel {
	if lvl := ld.level(price); lvl != nil {
		return lvl
	}
	lvl := &priceLevel{price: price}
	ld.tree.Put(price, lvl)
	return lvl
}

func (ld ladder) removeLevelIfEmpty(price decimal.Decimal) {
	if lvl := ld.level(price); lvl != nil && lvl.empty() {
		ld.tree.Remove(price)
	}
}

// bestLevel returns the highest-priority level, or nil on an empty side.
func (ld ladder) bestLevel() *priceLevel {
	n := ld.tree.Left()
	if n == nil {
		return nil
	}
	return n.Value.(*priceLevel)
}

// forEachLevel walks levels best to worst. The walk is derived from the
// current tree state each call; fn returning false stops it.
func (ld ladder) forEachLevel(fn func(*priceLevel) bool) {
	it := ld.tree.Iterator()
	for it.Next() {
		if !fn(it.Value().(*priceLevel)) {
			return
		}
	}
}

func (ld ladder) depth() int {
	return ld.tree.Size()
}

func (ld ladder) clear() {
	ld.tree.Clear()
}

// bidComparator orders bid prices descending so the best (highest) bid is
// the tree minimum.
func bidComparator(a, b interface{}) int {
	aAsserted := a.(decimal.Decimal)
	bAsserted := b.(decimal.Decimal)
	switch {
	case aAsserted.GreaterThan(bAsserted):
		return -1
	case aAsserted.LessThan(bAsserted):
		return 1
	default:
		return 0
	}
}

// askComparator orders ask prices ascending so the best (lowest) ask is
// the tree minimum.
func askComparator(a, b interface{}) int {
	aAsserted := a.(decimal.Decimal)
	bAsserted := b.(decimal.Decimal)
	switch {
	case aAsserted.GreaterThan(bAsserted):
		return 1
	case aAsserted.LessThan(bAsserted):
		return -1
	default:
		return 0
	}
}

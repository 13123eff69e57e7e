package orderbook

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Book is a single-instrument limit order book with strict price-then-time
// priority. All mutations are serialized through one owner goroutine: a
// caller builds a command, submits it, and blocks until the owner replies.
// A sweep plus rest or cancel runs to completion before the next command
// is taken.
type Book struct {
	symbol string
	bids   ladder
	asks   ladder

	commands  chan bookCommand
	done      chan struct{}
	closeOnce sync.Once
}

type bookCommand struct {
	run   func() (FillOutcome, error)
	reply chan bookResult
}

type bookResult struct {
	outcome FillOutcome
	err     error
}

// NewBook creates an empty book for the given symbol and starts its owner
// goroutine. Close releases it.
func NewBook(symbol string) (*Book, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, &ValidationError{Field: "symbol", Reason: "must not be blank"}
	}
	b := &Book{
		symbol:   symbol,
		bids:     newBidLadder(),
		asks:     newAskLadder(),
		commands: make(chan bookCommand),
		done:     make(chan struct{}),
	}
	go b.run()
	return b, nil
}

func (b *Book) Symbol() string {
	return b.symbol
}

// Close stops the owner goroutine. Mutations submitted afterwards return
// ErrBookClosed. Close is idempotent.
func (b *Book) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

func (b *Book) run() {
	for {
		select {
		case cmd := <-b.commands:
			outcome, err := cmd.run()
			cmd.reply <- bookResult{outcome: outcome, err: err}
		case <-b.done:
			return
		}
	}
}

// submit hands a mutation to the owner goroutine and waits for its result.
// The command channel is unbuffered, so an accepted command is always
// answered.
func (b *Book) submit(run func() (FillOutcome, error)) (FillOutcome, error) {
	cmd := bookCommand{run: run, reply: make(chan bookResult, 1)}
	select {
	case b.commands <- cmd:
		res := <-cmd.reply
		return res.outcome, res.err
	case <-b.done:
		return FillOutcome{}, ErrBookClosed
	}
}

// Place sweeps the opposite ladder with the order, then rests any limit
// remainder on the order's own side. Market remainder is reported as
// unfilled and discarded, never queued.
func (b *Book) Place(o *Order) (FillOutcome, error) {
	return b.submit(func() (FillOutcome, error) {
		return b.place(o)
	})
}

func (b *Book) place(o *Order) (FillOutcome, error) {
	out := sweep(o, b.ladderFor(o.Side.opposite()))
	if !o.HasRemaining() {
		return out, nil
	}
	if o.Type != Limit {
		out.Unfilled = o.Quantity
		return out, nil
	}
	if !o.restable() {
		return out, &ValidationError{Field: "order", Reason: "not restable: " + o.ID}
	}
	own := b.ladderFor(o.Side)
	own.ensureLevel(o.Price).append(o)
	out.Rested = o.Quantity
	return out, nil
}

// Cancel removes the resting order with the given id from the level at
// price on the stated side. It returns an OrderNotFoundError, leaving the
// book unchanged, when no such order rests there.
func (b *Book) Cancel(id string, side Side, price decimal.Decimal) error {
	_, err := b.submit(func() (FillOutcome, error) {
		return FillOutcome{}, b.cancel(id, side, price)
	})
	return err
}

func (b *Book) cancel(id string, side Side, price decimal.Decimal) error {
	own := b.ladderFor(side)
	key := price.Truncate(Scale)
	lvl := own.level(key)
	if lvl == nil || !lvl.removeByID(id) {
		return &OrderNotFoundError{ID: id}
	}
	own.removeLevelIfEmpty(key)
	return nil
}

// Execute dispatches an order with its action: Add places, Remove
// cancels. Any other action is a caller defect and fails loudly.
func (b *Book) Execute(o *Order, action Action) (FillOutcome, error) {
	switch action {
	case Add:
		return b.Place(o)
	case Remove:
		return FillOutcome{}, b.Cancel(o.ID, o.Side, o.Price)
	default:
		return FillOutcome{}, &UnsupportedActionError{Action: action}
	}
}

// Clear drops every level on both sides. The symbol is retained.
func (b *Book) Clear() error {
	_, err := b.submit(func() (FillOutcome, error) {
		b.bids.clear()
		b.asks.clear()
		return FillOutcome{}, nil
	})
	return err
}

// Depth returns the number of levels per side (bids, asks).
func (b *Book) Depth() (int, int) {
	return b.bids.depth(), b.asks.depth()
}

func (b *Book) ladderFor(side Side) ladder {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

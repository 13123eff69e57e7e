package orderbook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits prices and quantities are
// quantized to. Values are truncated, not rounded.
const Scale = 8

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

func (s Side) valid() bool {
	return s == Buy || s == Sell
}

func (s Side) opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

type OrderType string

const (
	Limit  OrderType = "limit"
	Market OrderType = "market"
)

// Action selects the book mutation an order is submitted with.
type Action string

const (
	Add    Action = "add"
	Remove Action = "remove"
)

// Order is a single trade intent. All fields are fixed at construction
// except Quantity, which only the matching sweep reduces.
type Order struct {
	ID       string
	Side     Side
	Type     OrderType
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// NewLimitOrder validates and builds a limit order. Price and quantity
// are truncated to Scale fractional digits.
func NewLimitOrder(id string, price, quantity decimal.Decimal, side Side) (*Order, error) {
	if !price.IsPositive() {
		return nil, &ValidationError{Field: "price", Reason: "must be positive"}
	}
	o := &Order{
		ID:    id,
		Side:  side,
		Type:  Limit,
		Price: price.Truncate(Scale),
	}
	if err := o.init(quantity); err != nil {
		return nil, err
	}
	return o, nil
}

// NewMarketOrder validates and builds a market order. Market orders carry
// no price and cross any level.
func NewMarketOrder(id string, quantity decimal.Decimal, side Side) (*Order, error) {
	o := &Order{
		ID:   id,
		Side: side,
		Type: Market,
	}
	if err := o.init(quantity); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) init(quantity decimal.Decimal) error {
	if strings.TrimSpace(o.ID) == "" {
		return &ValidationError{Field: "id", Reason: "must not be blank"}
	}
	if !o.Side.valid() {
		return &ValidationError{Field: "side", Reason: "must be buy or sell"}
	}
	if !quantity.IsPositive() {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	o.Quantity = quantity.Truncate(Scale)
	return nil
}

// Crosses reports whether a limit order trades against a level at
// levelPrice: a buy crosses at or below its price, a sell at or above.
func (o *Order) Crosses(levelPrice decimal.Decimal) bool {
	if o.Side == Buy {
		return o.Price.GreaterThanOrEqual(levelPrice)
	}
	return o.Price.LessThanOrEqual(levelPrice)
}

// ReduceQuantity subtracts a fill. The caller guarantees amount does not
// exceed the remaining quantity.
func (o *Order) ReduceQuantity(amount decimal.Decimal) {
	o.Quantity = o.Quantity.Sub(amount).Truncate(Scale)
}

func (o *Order) HasRemaining() bool {
	return o.Quantity.IsPositive()
}

// restable reports whether the order may be queued into a ladder.
func (o *Order) restable() bool {
	return o.Quantity.IsPositive() && o.Price.IsPositive()
}

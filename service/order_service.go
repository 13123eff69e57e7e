// Package service is the thin facade in front of the matching core: it
// generates order ids, forwards place/cancel requests into the book, and
// renders the book for humans. It holds no matching logic of its own.
package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"matchbook/orderbook"
	"matchbook/params"
)

type OrderService struct {
	book *orderbook.Book
	log  *zap.Logger
}

// NewOrderService opens a book for the configured symbol and, when
// SeedDepth is positive, seeds both sides with demo limit orders.
func NewOrderService(cfg params.Config, log *zap.Logger) (*OrderService, error) {
	book, err := orderbook.NewBook(cfg.Symbol)
	if err != nil {
		return nil, err
	}
	s := &OrderService{book: book, log: log}
	if cfg.SeedDepth > 0 {
		if err := s.seed(cfg.SeedDepth); err != nil {
			book.Close()
			return nil, err
		}
	}
	return s, nil
}

// NewOrderID returns a fresh order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// seed places depth buy levels then depth sell levels, price and
// quantity both i+1, so the lower half of the grid bids and the upper
// half asks without crossing.
func (s *OrderService) seed(depth int) error {
	for i := 0; i < depth*2; i++ {
		side := orderbook.Buy
		if i >= depth {
			side = orderbook.Sell
		}
		v := decimal.NewFromInt(int64(i + 1))
		o, err := orderbook.NewLimitOrder(NewOrderID(), v, v, side)
		if err != nil {
			return err
		}
		if _, err := s.book.Place(o); err != nil {
			return err
		}
	}
	s.log.Info("order book seeded",
		zap.String("symbol", s.book.Symbol()),
		zap.Int("levels_per_side", depth),
	)
	return nil
}

// PlaceNewOrder forwards the order into the book and logs the outcome.
func (s *OrderService) PlaceNewOrder(o *orderbook.Order) (orderbook.FillOutcome, error) {
	out, err := s.book.Execute(o, orderbook.Add)
	if err != nil {
		s.log.Warn("place rejected", zap.String("order_id", o.ID), zap.Error(err))
		return out, err
	}
	s.log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("side", string(o.Side)),
		zap.String("type", string(o.Type)),
		zap.String("matched", out.Matched.String()),
		zap.String("rested", out.Rested.String()),
		zap.String("unfilled", out.Unfilled.String()),
		zap.Int("fills", len(out.Fills)),
	)
	return out, nil
}

// CancelOrder removes a resting order from the book.
func (s *OrderService) CancelOrder(o *orderbook.Order) error {
	if _, err := s.book.Execute(o, orderbook.Remove); err != nil {
		s.log.Warn("cancel rejected", zap.String("order_id", o.ID), zap.Error(err))
		return err
	}
	s.log.Info("order cancelled", zap.String("order_id", o.ID))
	return nil
}

func (s *OrderService) Book() *orderbook.Book {
	return s.book
}

func (s *OrderService) Close() {
	s.book.Close()
}

// RenderBook draws the board: asks worst to best on top, bids best to
// worst below. The render is best-effort and never fails, even against a
// book being mutated concurrently.
func (s *OrderService) RenderBook() string {
	snap := s.book.Snapshot()

	var sb strings.Builder
	sb.WriteString("======================\n           SELL\n")
	asks := lo.Reverse(append([]orderbook.LevelSnapshot(nil), snap.Asks...))
	for _, lvl := range asks {
		sb.WriteString(renderLevel(lvl))
	}
	sb.WriteString("PRICE                QUANTITY\n")
	for _, lvl := range snap.Bids {
		sb.WriteString(renderLevel(lvl))
	}
	sb.WriteString("               BUY\n======================\n")
	return sb.String()
}

func renderLevel(lvl orderbook.LevelSnapshot) string {
	quantities := lo.Map(lvl.Orders, func(o orderbook.OrderSnapshot, _ int) string {
		return o.Quantity.String()
	})
	return lvl.Price.String() + ":         " + strings.Join(quantities, " ") + "\n"
}

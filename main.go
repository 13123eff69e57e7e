package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"matchbook/orderbook"
	"matchbook/params"
	"matchbook/service"
)

func main() {
	cfg := params.LoadFromEnv("")

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	svc, err := service.NewOrderService(cfg, logger)
	if err != nil {
		logger.Fatal("order service", zap.Error(err))
	}
	defer svc.Close()

	fmt.Println(svc.RenderBook())

	// Drive the book from two independent submitters; the command queue
	// serializes them.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		limit, err := orderbook.NewLimitOrder(
			service.NewOrderID(),
			decimal.NewFromInt(6),
			decimal.NewFromInt(9),
			orderbook.Buy,
		)
		if err != nil {
			logger.Error("build limit order", zap.Error(err))
			return
		}
		if _, err := svc.PlaceNewOrder(limit); err != nil {
			return
		}
		// The remainder rests; cancel it again.
		_ = svc.CancelOrder(limit)
	}()

	go func() {
		defer wg.Done()
		market, err := orderbook.NewMarketOrder(
			service.NewOrderID(),
			decimal.NewFromInt(5),
			orderbook.Buy,
		)
		if err != nil {
			logger.Error("build market order", zap.Error(err))
			return
		}
		_, _ = svc.PlaceNewOrder(market)
	}()

	wg.Wait()
	fmt.Println(svc.RenderBook())
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}

package main

import (
	"fmt"
	"time"

	"github.com/joripage/matchsim/pkg/book"
	"github.com/joripage/matchsim/pkg/logging"
	"github.com/joripage/matchsim/pkg/market"
	"github.com/joripage/matchsim/pkg/sim"
)

const (
	numOrders = 200_000
	minPrice  = 100
	maxPrice  = 200
	minQty    = 1
	maxQty    = 100
)

func main() {
	mgr := market.NewManager(nil, logging.NewLogger("error"))

	totalMatched := 0
	totalQty := int64(0)
	mgr.RegisterTradeCallback(func(instrument string, trades []book.Event) {
		for _, t := range trades {
			totalMatched++
			totalQty += t.Quantity
		}
	})

	steps := sim.RandomFlow(sim.FlowConfig{
		Instrument: "ABC",
		Count:      numOrders,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		MinQty:     minQty,
		MaxQty:     maxQty,
		MarketPct:  10,
		Seed:       time.Now().UnixNano(),
	})

	start := time.Now()
	for _, step := range steps {
		side := book.BUY
		if step.Side == string(book.SELL) {
			side = book.SELL
		}
		_, _ = mgr.Submit(step.Instrument, side, book.Request{
			Trader:   step.Trader,
			Quantity: step.Quantity,
			Price:    step.Price,
			Type:     book.OrderType(step.Type),
		})
	}
	elapsed := time.Since(start)

	buyDepth, sellDepth := mgr.Depth("ABC")

	fmt.Println("--------")
	fmt.Printf("Total Orders     : %d\n", numOrders)
	fmt.Printf("Total Matches    : %d\n", totalMatched)
	fmt.Printf("Total Matched Qty: %d\n", totalQty)
	fmt.Printf("Resting Buy/Sell : %d/%d\n", buyDepth, sellDepth)
	fmt.Printf("Time Taken       : %s\n", elapsed)
	fmt.Printf("  %.0f orders/s\n", float64(numOrders)/elapsed.Seconds())
}

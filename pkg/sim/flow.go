package sim

import (
	"fmt"
	"math/rand"

	"github.com/joripage/matchsim/pkg/book"
)

// FlowConfig shapes a random request flow.
type FlowConfig struct {
	Instrument string
	Count      int
	MinPrice   int64
	MaxPrice   int64
	MinQty     int64
	MaxQty     int64
	MarketPct  int // percentage of MARKET requests, 0..100
	Seed       int64
}

// RandomFlow generates a reproducible stream of random steps around a
// price range, roughly half buys and half sells.
func RandomFlow(cfg FlowConfig) []Step {
	rng := rand.New(rand.NewSource(cfg.Seed))
	steps := make([]Step, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		side := book.BUY
		if rng.Intn(2) == 0 {
			side = book.SELL
		}
		typ := book.LIMIT
		if rng.Intn(100) < cfg.MarketPct {
			typ = book.MARKET
		}

		steps = append(steps, Step{
			Instrument: cfg.Instrument,
			Trader:     fmt.Sprintf("T-%06d", i),
			Side:       string(side),
			Type:       string(typ),
			Price:      cfg.MinPrice + rng.Int63n(cfg.MaxPrice-cfg.MinPrice+1),
			Quantity:   cfg.MinQty + rng.Int63n(cfg.MaxQty-cfg.MinQty+1),
		})
	}
	return steps
}

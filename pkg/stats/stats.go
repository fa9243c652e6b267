// Package stats aggregates trade events into per-instrument summary
// figures for simulation reports.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/joripage/matchsim/pkg/book"
)

// Summary describes one instrument's traded flow.
type Summary struct {
	Trades   int
	Volume   int64           // total quantity traded
	Turnover decimal.Decimal // sum of price*quantity
	VWAP     decimal.Decimal // turnover / volume, zero when no volume
	High     int64
	Low      int64
	Last     int64 // price of the most recent trade
}

// Summarize folds an event sequence (most recent first, as returned by
// the book's Events query) into a Summary.
func Summarize(events []book.Event) Summary {
	var s Summary
	if len(events) == 0 {
		return s
	}

	s.Last = events[0].Price
	s.High = events[0].Price
	s.Low = events[0].Price
	turnover := decimal.Zero

	for _, ev := range events {
		s.Trades++
		s.Volume += ev.Quantity
		if ev.Price > s.High {
			s.High = ev.Price
		}
		if ev.Price < s.Low {
			s.Low = ev.Price
		}
		turnover = turnover.Add(decimal.NewFromInt(ev.Price).Mul(decimal.NewFromInt(ev.Quantity)))
	}

	s.Turnover = turnover
	if s.Volume > 0 {
		s.VWAP = turnover.Div(decimal.NewFromInt(s.Volume))
	}
	return s
}

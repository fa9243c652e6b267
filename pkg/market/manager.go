// Package market serializes access to per-instrument books. Each book
// models exactly one instrument; the manager owns one lock per
// instrument so callers may submit from any number of goroutines, and
// every submit observably replaces that instrument's whole book value.
package market

import (
	"sync"

	"go.uber.org/zap"

	"github.com/joripage/matchsim/pkg/book"
	"github.com/joripage/matchsim/pkg/logging"
	"github.com/joripage/matchsim/pkg/market/rule"
)

type Config struct {
	Rules []rule.Rule
}

type Manager struct {
	books     sync.Map // instrument -> *slot
	callbacks []func(instrument string, trades []book.Event)
	rules     []rule.Rule
	log       *logging.Logger
	mu        sync.Mutex // guards callbacks
}

// slot pins one instrument's current book behind its own lock.
type slot struct {
	mu   sync.Mutex
	book *book.Book
}

func NewManager(cfg *Config, log *logging.Logger) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Manager{
		rules: cfg.Rules,
		log:   log,
	}
}

// Submit runs a request through the pre-trade rules and then through
// the instrument's book, returning the trades it produced in
// chronological order.
func (m *Manager) Submit(instrument string, side book.Side, req book.Request) ([]book.Event, error) {
	for _, r := range m.rules {
		if err := r.Check(instrument, side, req); err != nil {
			if m.log != nil {
				m.log.Warn("request rejected",
					zap.String("instrument", instrument),
					zap.String("side", string(side)),
					zap.String("trader", req.Trader),
					zap.Error(err))
			}
			return nil, err
		}
	}

	s := m.getOrCreateSlot(instrument)

	s.mu.Lock()
	prev := s.book
	var next *book.Book
	if side == book.BUY {
		next = prev.Buy(req)
	} else {
		next = prev.Sell(req)
	}
	s.book = next
	s.mu.Unlock()

	trades := newTrades(prev, next)
	if len(trades) > 0 {
		if m.log != nil {
			for _, t := range trades {
				m.log.Info("trade",
					zap.String("instrument", instrument),
					zap.String("buyer", t.Buyer),
					zap.String("seller", t.Seller),
					zap.Int64("price", t.Price),
					zap.Int64("qty", t.Quantity))
			}
		}
		m.mu.Lock()
		cbs := m.callbacks
		m.mu.Unlock()
		for _, cb := range cbs {
			cb(instrument, trades)
		}
	}

	return trades, nil
}

// RegisterTradeCallback adds a callback invoked with each submit's
// trades, in chronological order.
func (m *Manager) RegisterTradeCallback(cb func(instrument string, trades []book.Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// Book returns the instrument's current book value. The value is
// immutable; callers may query it freely.
func (m *Manager) Book(instrument string) *book.Book {
	s := m.getOrCreateSlot(instrument)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book
}

// Depth returns the resting order counts for one instrument.
func (m *Manager) Depth(instrument string) (buys, sells int) {
	b := m.Book(instrument)
	return b.BuyDepth(), b.SellDepth()
}

// History returns the instrument's full trade history, most recent
// first.
func (m *Manager) History(instrument string) []book.Event {
	return m.Book(instrument).Events()
}

func (m *Manager) getOrCreateSlot(instrument string) *slot {
	if val, ok := m.books.Load(instrument); ok {
		return val.(*slot)
	}
	actual, _ := m.books.LoadOrStore(instrument, &slot{book: book.New()})
	return actual.(*slot)
}

// newTrades extracts the events next has beyond prev, oldest first.
func newTrades(prev, next *book.Book) []book.Event {
	events := next.Events() // most recent first
	n := next.EventCount() - prev.EventCount()
	if n <= 0 {
		return nil
	}
	trades := make([]book.Event, n)
	for i := 0; i < n; i++ {
		trades[n-1-i] = events[i]
	}
	return trades
}

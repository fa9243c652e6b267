// Package book implements a continuous double-auction matching core
// for a single instrument.
//
// The book is used functionally: Buy and Sell leave the receiver
// untouched and return a new *Book derived from it, so a caller can
// keep any number of past states. A single Book value must not be
// shared between goroutines that call Buy/Sell concurrently; serialize
// per instrument (see pkg/market). Distinct books share nothing and
// may be driven in parallel.
//
// Resting orders on each side are ranked by price and, at equal price,
// by quantity (larger buys first, smaller sells first). There is no
// time priority; see the queue ordering notes in queue.go.
package book

// Book is the aggregate state: the two side queues and the trade log.
type Book struct {
	buys  *orderQueue
	sells *orderQueue

	// events is chronological; the query surface exposes it
	// most-recent-first.
	events []Event
}

// New returns an empty book. It is the only construction entry point;
// every other state is produced by Buy or Sell.
func New() *Book {
	return &Book{
		buys:  newOrderQueue(buyPriority),
		sells: newOrderQueue(sellPriority),
	}
}

// Buy processes a buy request against the sell side and returns the
// resulting book. The receiver is not modified.
func (b *Book) Buy(req Request) *Book {
	return b.process(buySide, req)
}

// Sell processes a sell request against the buy side and returns the
// resulting book. The receiver is not modified.
func (b *Book) Sell(req Request) *Book {
	return b.process(sellSide, req)
}

// Events returns the full trade history, most recent first. The slice
// is freshly built on every call and safe for the caller to keep.
func (b *Book) Events() []Event {
	events := make([]Event, len(b.events))
	for i, ev := range b.events {
		events[len(b.events)-1-i] = ev
	}
	return events
}

// EventCount is the number of trades recorded so far.
func (b *Book) EventCount() int {
	return len(b.events)
}

// LastEvent returns the most recently appended event.
func (b *Book) LastEvent() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	return b.events[len(b.events)-1], true
}

// BuyDepth is the number of resting buy orders.
func (b *Book) BuyDepth() int {
	return b.buys.size()
}

// SellDepth is the number of resting sell orders.
func (b *Book) SellDepth() int {
	return b.sells.size()
}

// BestBuy returns the highest-priority resting buy without mutating
// the book.
func (b *Book) BestBuy() (Order, bool) {
	return b.buys.peek()
}

// BestSell returns the highest-priority resting sell without mutating
// the book.
func (b *Book) BestSell() (Order, bool) {
	return b.sells.peek()
}

// clone makes the copy Buy/Sell mutate in place of the receiver. The
// event slice is capped so a later append can never write into a
// backing array shared with the old book.
func (b *Book) clone() *Book {
	return &Book{
		buys:   b.buys.clone(),
		sells:  b.sells.clone(),
		events: b.events[:len(b.events):len(b.events)],
	}
}

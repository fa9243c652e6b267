package book

// sideConfig bundles everything that differs between processing a buy
// and processing a sell, so the matching loop in match.go can be
// written once. passive is the queue the request consumes, own is the
// queue an unfilled LIMIT remainder rests on.
type sideConfig struct {
	passive  func(*Book) *orderQueue
	own      func(*Book) *orderQueue
	fillable func(req Request, resting Order) bool
	trade    func(req Request, resting Order, price, qty int64) Event
}

var buySide = sideConfig{
	passive: func(b *Book) *orderQueue { return b.sells },
	own:     func(b *Book) *orderQueue { return b.buys },
	fillable: func(req Request, resting Order) bool {
		// a market buy takes the resting sell's own price, so the
		// comparison always holds
		return req.Type == MARKET || req.Price >= resting.Price
	},
	trade: func(req Request, resting Order, price, qty int64) Event {
		return Event{Buyer: req.Trader, Seller: resting.Trader, Price: price, Quantity: qty}
	},
}

var sellSide = sideConfig{
	passive: func(b *Book) *orderQueue { return b.buys },
	own:     func(b *Book) *orderQueue { return b.sells },
	fillable: func(req Request, resting Order) bool {
		return req.Type == MARKET || resting.Price >= req.Price
	},
	trade: func(req Request, resting Order, price, qty int64) Event {
		return Event{Buyer: resting.Trader, Seller: req.Trader, Price: price, Quantity: qty}
	},
}

package book

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

type OrderType string

const (
	LIMIT  OrderType = "LIMIT"
	MARKET OrderType = "MARKET"
)

// Order is a resting entry on one side of the book. The engine does not
// interpret Trader; it is an opaque reference owned by the caller.
type Order struct {
	Trader   string
	Quantity int64
	Price    int64
}

// Request is the input to one Buy/Sell call. It is never stored; an
// unfilled LIMIT remainder becomes a fresh Order on the active side,
// an unfilled MARKET remainder is discarded. Price is ignored when
// Type == MARKET.
type Request struct {
	Trader   string
	Quantity int64
	Price    int64
	Type     OrderType
}

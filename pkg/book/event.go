package book

// Event records one completed trade. Events are append-only; once
// written to a book they are never mutated or reordered.
type Event struct {
	Buyer    string
	Seller   string
	Price    int64
	Quantity int64
}

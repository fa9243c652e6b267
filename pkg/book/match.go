package book

// process resolves one request against the passive side. It is the
// shared matching loop; everything side-specific comes in through s.
//
// Only the single best passive order is ever examined per iteration:
// if it fails the price test, nothing deeper in the queue can pass it
// either (the queue ordering guarantees the best order is the most
// favorable), so the request rests or is discarded immediately.
//
// The loop terminates because every continued iteration fully consumes
// one passive order and strictly reduces the remaining active
// quantity.
func (b *Book) process(s sideConfig, req Request) *Book {
	next := b.clone()

	for {
		resting, ok := s.passive(next).peek()
		if !ok || !s.fillable(req, resting) {
			// no fillable passive liquidity: a LIMIT remainder
			// becomes new resting liquidity, a MARKET remainder
			// is discarded
			if req.Type == LIMIT {
				s.own(next).insert(Order{
					Trader:   req.Trader,
					Quantity: req.Quantity,
					Price:    req.Price,
				})
			}
			return next
		}
		s.passive(next).pop()

		// execution price is the lower of the two limits; a market
		// request takes the resting order's price
		price := resting.Price
		if req.Type == LIMIT {
			price = min(req.Price, resting.Price)
		}
		qty := min(req.Quantity, resting.Quantity)
		next.events = append(next.events, s.trade(req, resting, price, qty))

		switch {
		case req.Quantity == resting.Quantity:
			// exact fill: both sides fully consumed
			return next
		case req.Quantity > resting.Quantity:
			// over-fill: the resting order is gone, keep consuming
			// passive liquidity with what is left
			req.Quantity -= resting.Quantity
		default:
			// short fill: the request is satisfied, the resting
			// order returns to its queue with the remainder
			resting.Quantity -= req.Quantity
			s.passive(next).insert(resting)
			return next
		}
	}
}

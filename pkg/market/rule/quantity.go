package rule

import (
	"fmt"

	"github.com/joripage/matchsim/pkg/book"
)

// QuantityRule rejects non-positive quantities and, for limit
// requests, non-positive prices.
type QuantityRule struct{}

func (r *QuantityRule) Check(instrument string, side book.Side, req book.Request) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Quantity)
	}
	if req.Type == book.LIMIT && req.Price <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrice, req.Price)
	}
	return nil
}

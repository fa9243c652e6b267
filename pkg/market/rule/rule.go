// Package rule holds pre-trade checks applied by the market manager
// before a request reaches the matching core. The core itself accepts
// any values; rejection with a typed error happens here.
package rule

import (
	"errors"

	"github.com/joripage/matchsim/pkg/book"
)

var (
	ErrInvalidQuantity = errors.New("invalid order quantity")
	ErrInvalidPrice    = errors.New("invalid order price")
	ErrPriceBand       = errors.New("price outside allowed band")
	ErrTickSize        = errors.New("invalid tick size")
)

type Rule interface {
	Check(instrument string, side book.Side, req book.Request) error
}

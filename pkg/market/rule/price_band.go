package rule

import (
	"fmt"

	"github.com/joripage/matchsim/pkg/book"
)

type Band struct {
	Floor int64 `yaml:"floor"`
	Ceil  int64 `yaml:"ceil"`
}

// PriceBandRule rejects limit prices outside a per-instrument band.
// Instruments without a band and market requests pass unchecked.
type PriceBandRule struct {
	Bands map[string]Band
}

func (r *PriceBandRule) Check(instrument string, side book.Side, req book.Request) error {
	if req.Type == book.MARKET {
		return nil
	}
	band, ok := r.Bands[instrument]
	if !ok {
		return nil
	}
	if req.Price < band.Floor || req.Price > band.Ceil {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPriceBand, req.Price, band.Floor, band.Ceil)
	}
	return nil
}

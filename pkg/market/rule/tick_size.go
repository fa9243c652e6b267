package rule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joripage/matchsim/pkg/book"
)

type tickSizeConfig struct {
	MaxPrice int64 `json:"maxPrice"` // 0 = no limit
	Step     int64 `json:"step"`
}

// TickSizeRule holds tick ladders for any number of instruments.
type TickSizeRule struct {
	Config map[string][]tickSizeConfig
}

// NewTickSizeRuleFromFile loads the ladder config from a JSON file.
func NewTickSizeRuleFromFile(path string) (*TickSizeRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg map[string][]tickSizeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &TickSizeRule{Config: cfg}, nil
}

func (r *TickSizeRule) Check(instrument string, side book.Side, req book.Request) error {
	if req.Type == book.MARKET {
		return nil
	}
	ladder, ok := r.Config[instrument]
	if !ok { // no config -> no rule
		return nil
	}

	for _, step := range ladder {
		if step.MaxPrice == 0 || req.Price <= step.MaxPrice {
			if req.Price%step.Step != 0 {
				return fmt.Errorf("%w: %d not a multiple of %d", ErrTickSize, req.Price, step.Step)
			}
			return nil
		}
	}

	return nil
}

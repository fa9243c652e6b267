package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joripage/matchsim/pkg/book"
)

// Step is one scripted request in a scenario file.
type Step struct {
	Instrument string `yaml:"instrument"`
	Trader     string `yaml:"trader"`
	Side       string `yaml:"side"`
	Type       string `yaml:"type"` // LIMIT (default) or MARKET
	Price      int64  `yaml:"price"`
	Quantity   int64  `yaml:"quantity"`
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// LoadScenario reads a scenario from a YAML file. Environment
// variables in the file are expanded before parsing.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = []byte(os.ExpandEnv(string(data)))

	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s Step) request() (book.Side, book.Request, error) {
	side := book.Side(s.Side)
	if side != book.BUY && side != book.SELL {
		return "", book.Request{}, fmt.Errorf("unknown side %q", s.Side)
	}

	typ := book.OrderType(s.Type)
	if s.Type == "" {
		typ = book.LIMIT
	}
	if typ != book.LIMIT && typ != book.MARKET {
		return "", book.Request{}, fmt.Errorf("unknown order type %q", s.Type)
	}

	return side, book.Request{
		Trader:   s.Trader,
		Quantity: s.Quantity,
		Price:    s.Price,
		Type:     typ,
	}, nil
}

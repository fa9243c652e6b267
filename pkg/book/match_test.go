package book

import (
	"fmt"
	"testing"
)

func TestExactFill(t *testing.T) {
	b := New().
		Sell(Request{Trader: "2", Quantity: 10, Price: 100, Type: LIMIT}).
		Buy(Request{Trader: "1", Quantity: 10, Price: 100, Type: LIMIT})

	events := b.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	want := Event{Buyer: "1", Seller: "2", Price: 100, Quantity: 10}
	if events[0] != want {
		t.Errorf("event %+v, want %+v", events[0], want)
	}
	if b.BuyDepth() != 0 || b.SellDepth() != 0 {
		t.Errorf("expected both sides empty, got %d/%d", b.BuyDepth(), b.SellDepth())
	}
}

func TestMarketBuyShortFillDiscardsRemainder(t *testing.T) {
	b := New().
		Sell(Request{Trader: "2", Quantity: 5, Price: 100, Type: LIMIT}).
		Buy(Request{Trader: "1", Quantity: 10, Type: MARKET})

	events := b.Events()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}
	if events[0].Quantity != 5 || events[0].Price != 100 {
		t.Errorf("expected 5 @ 100, got %+v", events[0])
	}
	// the unfilled 5 of a market order never rests
	if b.BuyDepth() != 0 || b.SellDepth() != 0 {
		t.Errorf("expected both sides empty, got %d/%d", b.BuyDepth(), b.SellDepth())
	}
}

func TestOverFillLeavesReducedRestingOrder(t *testing.T) {
	b := New().
		Sell(Request{Trader: "2", Quantity: 10, Price: 100, Type: LIMIT}).
		Buy(Request{Trader: "1", Quantity: 4, Price: 100, Type: LIMIT})

	events := b.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Quantity != 4 || events[0].Price != 100 {
		t.Errorf("expected 4 @ 100, got %+v", events[0])
	}
	if b.SellDepth() != 1 {
		t.Fatalf("expected the sell to keep resting, depth %d", b.SellDepth())
	}
	rest, _ := b.BestSell()
	if rest.Quantity != 6 || rest.Trader != "2" {
		t.Errorf("expected remainder 6 for trader 2, got %+v", rest)
	}
}

func TestMarketBuySweepsMultipleLevels(t *testing.T) {
	b := New().
		Sell(Request{Trader: "s1", Quantity: 5, Price: 101, Type: LIMIT}).
		Sell(Request{Trader: "s2", Quantity: 5, Price: 102, Type: LIMIT}).
		Sell(Request{Trader: "s3", Quantity: 5, Price: 103, Type: LIMIT}).
		Buy(Request{Trader: "b", Quantity: 12, Type: MARKET})

	events := b.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// most recent first: the partial fill at the worst price comes first
	if events[0].Price != 103 || events[0].Quantity != 2 {
		t.Errorf("expected final fill 2 @ 103, got %+v", events[0])
	}
	if events[2].Price != 101 || events[2].Quantity != 5 {
		t.Errorf("expected first fill 5 @ 101, got %+v", events[2])
	}
	if b.SellDepth() != 1 {
		t.Fatalf("expected one reduced sell left, depth %d", b.SellDepth())
	}
	rest, _ := b.BestSell()
	if rest.Trader != "s3" || rest.Quantity != 3 {
		t.Errorf("expected s3 left with 3, got %+v", rest)
	}
}

func TestLimitBuySweepsThenRests(t *testing.T) {
	b := New().
		Sell(Request{Trader: "s1", Quantity: 5, Price: 101, Type: LIMIT}).
		Sell(Request{Trader: "s2", Quantity: 5, Price: 105, Type: LIMIT}).
		Buy(Request{Trader: "b", Quantity: 8, Price: 103, Type: LIMIT})

	events := b.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Price != 101 || events[0].Quantity != 5 {
		t.Errorf("expected 5 @ 101, got %+v", events[0])
	}
	// 105 is above the limit, so the remaining 3 rests as a buy
	if b.BuyDepth() != 1 {
		t.Fatalf("expected remainder to rest, buy depth %d", b.BuyDepth())
	}
	rest, _ := b.BestBuy()
	if rest.Quantity != 3 || rest.Price != 103 {
		t.Errorf("expected resting buy 3 @ 103, got %+v", rest)
	}
	if b.SellDepth() != 1 {
		t.Errorf("expected the 105 sell untouched, depth %d", b.SellDepth())
	}
}

func TestUnfillableLimitDoesNotConsumePassiveOrder(t *testing.T) {
	b := New().
		Sell(Request{Trader: "2", Quantity: 10, Price: 105, Type: LIMIT}).
		Buy(Request{Trader: "1", Quantity: 10, Price: 100, Type: LIMIT})

	if len(b.Events()) != 0 {
		t.Fatalf("expected no trade, got %d events", len(b.Events()))
	}
	if b.BuyDepth() != 1 || b.SellDepth() != 1 {
		t.Errorf("expected both orders resting, got %d/%d", b.BuyDepth(), b.SellDepth())
	}
}

func TestExecutionPriceIsLowerOfTheTwoLimits(t *testing.T) {
	// aggressive sell below the best bid executes at the sell's price
	b := New().
		Buy(Request{Trader: "1", Quantity: 10, Price: 100, Type: LIMIT}).
		Sell(Request{Trader: "2", Quantity: 10, Price: 95, Type: LIMIT})

	ev, ok := b.LastEvent()
	if !ok {
		t.Fatal("expected a trade")
	}
	if ev.Price != 95 {
		t.Errorf("expected execution at 95, got %d", ev.Price)
	}
	if ev.Buyer != "1" || ev.Seller != "2" {
		t.Errorf("wrong parties: %+v", ev)
	}
}

func TestMarketSellTakesBestBidPrice(t *testing.T) {
	b := New().
		Buy(Request{Trader: "1", Quantity: 10, Price: 100, Type: LIMIT}).
		Buy(Request{Trader: "3", Quantity: 10, Price: 98, Type: LIMIT}).
		Sell(Request{Trader: "2", Quantity: 10, Type: MARKET})

	ev, ok := b.LastEvent()
	if !ok {
		t.Fatal("expected a trade")
	}
	if ev.Price != 100 || ev.Buyer != "1" {
		t.Errorf("expected fill against best bid 100, got %+v", ev)
	}
	if b.BuyDepth() != 1 {
		t.Errorf("expected the 98 bid left resting, depth %d", b.BuyDepth())
	}
}

func TestQuantityTieBreakDrivesMatchOrder(t *testing.T) {
	// two sells at the same price: the smaller one is consumed first
	b := New().
		Sell(Request{Trader: "big", Quantity: 50, Price: 100, Type: LIMIT}).
		Sell(Request{Trader: "small", Quantity: 5, Price: 100, Type: LIMIT}).
		Buy(Request{Trader: "b", Quantity: 5, Price: 100, Type: LIMIT})

	ev, _ := b.LastEvent()
	if ev.Seller != "small" {
		t.Errorf("expected the smaller sell to fill first, got %+v", ev)
	}
	rest, _ := b.BestSell()
	if rest.Trader != "big" || rest.Quantity != 50 {
		t.Errorf("expected the larger sell untouched, got %+v", rest)
	}
}

func BenchmarkBookMatch(b *testing.B) {
	bk := New()
	for i := 0; i < 10_000; i++ {
		bk = bk.Sell(Request{
			Trader:   fmt.Sprintf("SELL-%d", i),
			Quantity: 10,
			Price:    100 + int64(i%5),
			Type:     LIMIT,
		})
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bk = bk.Buy(Request{
			Trader:   fmt.Sprintf("BUY-%d", i),
			Quantity: 10,
			Price:    101,
			Type:     LIMIT,
		})
	}
}

package book

import "container/heap"

// orderQueue is a priority queue of resting orders for one side of the
// book, ordered by a side-specific comparator. It implements
// heap.Interface the same way for both sides; only less differs.
//
// There is no third tie-break: orders equal on both price and quantity
// are ordered arbitrarily by the heap. In particular this is NOT time
// priority.
type orderQueue struct {
	orders []Order
	less   func(a, b Order) bool
}

func newOrderQueue(less func(a, b Order) bool) *orderQueue {
	return &orderQueue{less: less}
}

// buyPriority ranks resting buys: higher price first, then larger
// quantity at equal price.
func buyPriority(a, b Order) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	return a.Quantity > b.Quantity
}

// sellPriority ranks resting sells: lower price first, then smaller
// quantity at equal price.
func sellPriority(a, b Order) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.Quantity < b.Quantity
}

func (q orderQueue) Len() int {
	return len(q.orders)
}

func (q orderQueue) Less(i, j int) bool {
	return q.less(q.orders[i], q.orders[j])
}

func (q orderQueue) Swap(i, j int) {
	q.orders[i], q.orders[j] = q.orders[j], q.orders[i]
}

func (q *orderQueue) Push(x any) {
	q.orders = append(q.orders, x.(Order))
}

func (q *orderQueue) Pop() any {
	n := len(q.orders)
	order := q.orders[n-1]
	q.orders = q.orders[:n-1]
	return order
}

// insert adds an order to the queue. No quantity or price validation
// happens here; callers guarantee positivity.
func (q *orderQueue) insert(order Order) {
	heap.Push(q, order)
}

// peek returns the highest-priority order without removing it.
func (q *orderQueue) peek() (Order, bool) {
	if len(q.orders) == 0 {
		return Order{}, false
	}
	return q.orders[0], true
}

// pop removes and returns the highest-priority order.
func (q *orderQueue) pop() (Order, bool) {
	if len(q.orders) == 0 {
		return Order{}, false
	}
	return heap.Pop(q).(Order), true
}

func (q *orderQueue) size() int {
	return len(q.orders)
}

// clone copies the queue. Orders are held by value, so copying the
// backing slice is enough to make the copy independent.
func (q *orderQueue) clone() *orderQueue {
	orders := make([]Order, len(q.orders))
	copy(orders, q.orders)
	return &orderQueue{orders: orders, less: q.less}
}

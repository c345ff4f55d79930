package fas

import "sort"

// fifo is a first-in first-out queue of row indices.
// Popped slots are not reclaimed; a queue lives for one Eades run and
// receives at most one push per vertex per queue.
type fifo struct {
	items []int
	head  int
}

func (q *fifo) push(i int) { q.items = append(q.items, i) }

func (q *fifo) empty() bool { return q.head >= len(q.items) }

// pop removes and returns the oldest index. Callers check empty first.
func (q *fifo) pop() int {
	i := q.items[q.head]
	q.head++

	return i
}

// sortBy stably orders the pending items by key, descending when desc is set.
// Equal keys keep insertion order.
func (q *fifo) sortBy(key func(i int) float64, desc bool) {
	pending := q.items[q.head:]
	sort.SliceStable(pending, func(a, b int) bool {
		ka, kb := key(pending[a]), key(pending[b])
		if desc {
			return ka > kb
		}

		return ka < kb
	})
}

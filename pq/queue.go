package pq

// Queue is a binary min-heap of Entry[T] stored in a flat slice.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	items []Entry[T]        // implicit complete binary tree
	tie   func(a, b T) bool // optional secondary order, may be nil
}

// New returns an empty queue configured by opts.
//
// Complexity: O(1) plus the optional capacity allocation.
func New[T any](opts ...Option[T]) *Queue[T] {
	cfg := DefaultOptions[T]()
	var opt Option[T]
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Queue[T]{
		items: make([]Entry[T], 0, cfg.Capacity),
		tie:   cfg.TieBreak,
	}
}

// Len reports the number of entries currently queued.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Enqueue inserts e at the logical end of the array and sifts it up while
// it is strictly less than its parent.
//
// Steps:
//  1. Append e; its index is the old length.
//  2. While not at the root and items[i] < items[parent(i)], swap and move up.
//
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(e Entry[T]) {
	q.items = append(q.items, e)
	q.up(len(q.items) - 1)
}

// Push is shorthand for Enqueue(Entry[T]{Priority: priority, Content: content}).
func (q *Queue[T]) Push(priority int, content T) {
	q.Enqueue(Entry[T]{Priority: priority, Content: content})
}

// Dequeue removes and returns the root entry.
// The boolean is false, and the Entry zero, when the queue is empty.
//
// Steps:
//  1. Swap the root with the last element and shrink the slice by one.
//  2. Sift the new root down: pick the smaller child (the right child only
//     if it exists); stop once the node is <= that child, otherwise swap.
//
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() (Entry[T], bool) {
	n := len(q.items)
	if n == 0 {
		var zero Entry[T]
		return zero, false
	}

	// 1) Move the root out of the way and shrink.
	last := n - 1
	q.swap(0, last)
	root := q.items[last]
	var zero Entry[T]
	q.items[last] = zero // drop payload reference held by the spare slot
	q.items = q.items[:last]

	// 2) Restore the heap below the new root.
	q.down(0)

	return root, true
}

// Peek returns the root entry without removing it.
// The boolean is false when the queue is empty. Peek never mutates the queue.
//
// Complexity: O(1).
func (q *Queue[T]) Peek() (Entry[T], bool) {
	if len(q.items) == 0 {
		var zero Entry[T]
		return zero, false
	}

	return q.items[0], true
}

// Drain dequeues every entry and returns them in non-decreasing priority
// order. The queue is empty afterwards.
//
// Complexity: O(n log n).
func (q *Queue[T]) Drain() []Entry[T] {
	out := make([]Entry[T], 0, len(q.items))
	for {
		e, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// less orders by Priority, consulting the tie-break only on equality.
func (q *Queue[T]) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if q.tie != nil {
		return q.tie(a.Content, b.Content)
	}

	return false
}

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// up sifts index i toward the root.
func (q *Queue[T]) up(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// down sifts index i toward the leaves.
func (q *Queue[T]) down(i int) {
	n := len(q.items)
	var child int
	for {
		child = 2*i + 1
		if child >= n {
			return
		}
		// right child only when it exists and is strictly smaller
		if child+1 < n && q.less(child+1, child) {
			child++
		}
		// stop once items[i] <= items[child]
		if !q.less(child, i) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

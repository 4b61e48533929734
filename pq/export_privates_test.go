package pq

// Test bridge: exposes the backing priorities to pq_test so the heap
// invariant can be checked directly without widening the public API.

// PrioritiesForTest returns a copy of the priorities in storage order.
func PrioritiesForTest[T any](q *Queue[T]) []int {
	out := make([]int, len(q.items))
	for i, e := range q.items {
		out[i] = e.Priority
	}

	return out
}

// Package pq provides a generic binary min-heap priority queue stored in
// array form.
//
// Overview:
//
//   - Every element is an Entry[T]: an integer Priority (lower wins) paired
//     with an opaque Content payload. Only Priority takes part in ordering,
//     so the payload type needs no comparison at all.
//   - The queue owns its backing slice. Callers see Enqueue, Dequeue, Peek
//     and never index into the storage directly.
//   - The implicit tree uses the usual index arithmetic: the parent of i is
//     (i-1)/2, its children are 2i+1 and 2i+2.
//
// Heap invariant:
//
//	for every i > 0:  priority[i] >= priority[(i-1)/2]
//
// The invariant holds after every Enqueue and Dequeue. Peek never mutates.
//
// Ties:
//
//   - By default equal priorities are left in whatever order the sift
//     operations produce, which depends on insertion order.
//   - WithTieBreak installs a secondary order on Content for callers that
//     need a fully deterministic dequeue sequence.
//
// Complexity:
//
//   - Enqueue: O(log n)
//   - Dequeue: O(log n)
//   - Peek:    O(1)
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. Synchronize externally if it
//     must be shared.
//
// Example:
//
//	q := pq.New[string]()
//	q.Push(3, "c")
//	q.Push(1, "a")
//	e, ok := q.Dequeue() // e.Content == "a", ok == true
package pq

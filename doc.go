// Package locator is the root of a small library for heap-ordered greedy
// matching between two named point sets.
//
// What is inside?
//
//	pq/         - generic binary min-heap priority queue (Enqueue, Dequeue, Peek)
//	locator/    - Manhattan distance, greedy one-to-one matching, single-name lookup
//	basics/     - stateless helpers over numbers, slices and strings
//	cmd/locate  - command-line front end reading TOML scenarios
//
// Quick example:
//
//	group1: A(0,0)  B(10,10)
//	group2: X(1,0)  Y(9,9)
//
//	A─X = 1   B─Y = 2   A─Y = 18   B─X = 19
//
// The closest pair A─X is committed first, then B─Y; A's match is X at (1,0).
//
// The matcher is greedy by design. It is not a minimum-cost assignment
// solver, and nothing here is safe for concurrent mutation.
//
//	go get github.com/katalvlaran/locator
package locator

// Package locator matches members of two named point sets by greedy
// nearest-neighbour selection and answers "who was matched with X?".
//
// Overview:
//
//   - Every (group1, group2) pair is scored with the orthogonal distance
//     |x1-x2| + |y1-y2| and pushed onto a pq.Queue.
//   - Pairs are dequeued in increasing distance. A pair is committed when
//     neither of its names is already matched; otherwise it is discarded.
//   - The pass ends as soon as one group is fully matched.
//   - Locate then reads the partner of one group1 name out of the result.
//
// The result is one-to-one (no name appears twice on either side) and holds
// min(|group1|, |group2|) matches. It is greedy, not optimal: the globally
// closest pair always wins, even when a different assignment would have a
// lower total distance.
//
// Ties:
//
//	Pairs with equal distance are ordered by the heap's structure. Groups
//	are enqueued in sorted key order, so equal inputs always give equal
//	outputs. WithLexicographicTies orders ties by (From, To) explicitly.
//
// Errors:
//
//   - ErrNotFound: Locate was asked for a name with no match. MustLocate
//     panics with the same error instead.
//
// Complexity:
//
//   - Time:  O(nm log(nm)) for n = |group1|, m = |group2|
//   - Space: O(nm) heap entries plus O(n + m) bookkeeping
//
// Example:
//
//	g1 := locator.Group{"A": {0, 0}, "B": {10, 10}}
//	g2 := locator.Group{"X": {1, 0}, "Y": {9, 9}}
//	t, err := locator.Locate(g1, g2, "A") // t.Name == "X", t.Point == {1, 0}
package locator

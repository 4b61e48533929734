package basics

import "github.com/samber/lo"

// Subset reports whether every element of target occurs in set.
// Multiplicity is ignored: [1,1] is a subset of [1].
func Subset[T comparable](set, target []T) bool {
	return lo.Every(set, target)
}

// Rotate returns a new slice with every element moved one place left and
// the first element moved to the end: [1,2,3,4] becomes [2,3,4,1].
// The input is not modified.
func Rotate(ls []int) []int {
	out := make([]int, 0, len(ls))
	if len(ls) == 0 {
		return out
	}
	out = append(out, ls[1:]...)

	return append(out, ls[0])
}

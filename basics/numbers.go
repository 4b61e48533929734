package basics

import "github.com/samber/lo"

// Gauss returns 1 + 2 + ... + n, or -1 when n is negative.
func Gauss(n int) int {
	if n < 0 {
		return -1
	}

	return lo.Sum(lo.RangeFrom(1, n))
}

// InRange counts the elements of ls that lie in the closed range [s, e].
func InRange(ls []int, s, e int) int {
	return lo.CountBy(ls, func(v int) bool {
		return v >= s && v <= e
	})
}

// Mean returns the arithmetic mean of ls. ok is false for an empty slice.
func Mean(ls []float64) (mean float64, ok bool) {
	if len(ls) == 0 {
		return 0, false
	}

	return lo.Sum(ls) / float64(len(ls)), true
}

// ToDecimal reads bits as a big-endian binary number: [1,0,1,0] is 10.
func ToDecimal(bits []int) int {
	return lo.Reduce(bits, func(acc int, b int, _ int) int {
		return acc*2 + b
	}, 0)
}

// Factorize returns the prime factors of n in ascending order, with
// repetition: 36 yields [2 2 3 3]. n is expected to be at least 2; smaller
// values yield an empty slice.
func Factorize(n uint) []uint {
	factors := make([]uint, 0, 8)
	num := n
	for f := uint(2); f <= num/f; f++ {
		for num%f == 0 {
			factors = append(factors, f)
			num /= f
		}
	}
	// whatever is left above 1 is itself prime
	if num > 1 {
		factors = append(factors, num)
	}

	return factors
}

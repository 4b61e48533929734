// Package basics holds small stateless helpers over ints, floats, slices
// and strings: arithmetic series, range counts, subsets, means, binary
// digits, prime factors, rotation, substring search and longest runs.
//
// Every function is a single pass (or close to it) over its input and has
// no shared state. Functions that can have "no answer" return a second
// boolean instead of a sentinel value.
package basics

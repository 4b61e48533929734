// Package locator defines the point, group and match types together with
// the functional options and sentinel errors of the greedy target locator.
package locator

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrNotFound indicates that the queried group1 name has no entry in the
// match set: the name is absent from group1, or one of the groups is empty.
var ErrNotFound = errors.New("locator: element not found in match set")

// Point is a 2D integer coordinate.
type Point struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Group maps a unique name to its current coordinate.
// Groups are read-only inputs; the locator never mutates them.
type Group map[string]Point

// Names returns the group's keys in ascending order.
func (g Group) Names() []string {
	names := lo.Keys(g)
	sort.Strings(names)

	return names
}

// Pair is the heap payload: one (group1, group2) candidate and its distance.
type Pair struct {
	From     string // name in group1
	To       string // name in group2
	Distance int    // Distance(group1[From], group2[To])
}

// MatchSet maps a group1 name to the group2 name it was matched with.
// Keys are unique and so are values: the mapping is one-to-one.
type MatchSet map[string]string

// Len returns the number of committed matches.
func (m MatchSet) Len() int { return len(m) }

// Names returns the matched group1 names in ascending order.
func (m MatchSet) Names() []string {
	names := lo.Keys(m)
	sort.Strings(names)

	return names
}

// Target is the located match: the group2 name and its coordinate.
type Target struct {
	Name string
	Point
}

// Options configures Pairs, Match and Locate.
//
// LexicographicTies – order equal-distance pairs by (From, To) ascending.
//
//	When false, equal distances keep heap-structural order, which is
//	still reproducible because group keys are enqueued in sorted order.
//
// Logger – Debug event per accepted pair, Trace event per rejected pair.
type Options struct {
	LexicographicTies bool
	Logger            zerolog.Logger
}

// Option represents a functional option for the locator.
type Option func(*Options)

// WithLexicographicTies breaks distance ties by (From, To) ascending.
func WithLexicographicTies() Option {
	return func(o *Options) {
		o.LexicographicTies = true
	}
}

// WithLogger routes match tracing to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns heap-structural tie order and a disabled logger.
func DefaultOptions() Options {
	return Options{
		LexicographicTies: false,
		Logger:            zerolog.Nop(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

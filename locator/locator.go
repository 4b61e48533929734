package locator

import (
	"fmt"

	"github.com/katalvlaran/locator/pq"
)

// Pairs enqueues every (group1, group2) combination keyed by its distance.
//
// Both groups are walked in sorted key order so that the heap sees the same
// insertion sequence for the same input. With WithLexicographicTies the
// queue also orders equal distances by (From, To).
//
// Complexity: O(nm log(nm)) time, O(nm) space, where n = |group1|, m = |group2|.
func Pairs(group1, group2 Group, opts ...Option) *pq.Queue[Pair] {
	cfg := buildOptions(opts)

	return buildPairs(group1, group2, cfg)
}

func buildPairs(group1, group2 Group, cfg Options) *pq.Queue[Pair] {
	qopts := []pq.Option[Pair]{pq.WithCapacity[Pair](len(group1) * len(group2))}
	if cfg.LexicographicTies {
		qopts = append(qopts, pq.WithTieBreak(lessPair))
	}
	heap := pq.New[Pair](qopts...)

	names2 := group2.Names()
	var d int
	for _, n1 := range group1.Names() {
		for _, n2 := range names2 {
			d = Distance(group1[n1], group2[n2])
			heap.Push(d, Pair{From: n1, To: n2, Distance: d})
		}
	}

	return heap
}

// lessPair orders pairs by From, then To.
func lessPair(a, b Pair) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Match greedily pairs members of group1 with members of group2.
//
// Steps:
//  1. Build the heap of all pairs (see Pairs).
//  2. Dequeue in increasing distance. Accept a pair only when neither name
//     has been seen on its side; mark both seen and record From→To.
//     Otherwise discard it. Rejected pairs are never revisited.
//  3. Stop as soon as either side is fully seen, or the heap runs dry.
//
// The globally closest pair is always accepted. The result is a greedy
// approximation and not a minimum-cost assignment.
//
// Complexity: O(nm log(nm)) time, O(nm + n + m) space.
func Match(group1, group2 Group, opts ...Option) MatchSet {
	cfg := buildOptions(opts)
	log := cfg.Logger

	matches := make(MatchSet, min(len(group1), len(group2)))
	// 1) An empty side is exhausted from the start.
	if len(group1) == 0 || len(group2) == 0 {
		return matches
	}

	heap := buildPairs(group1, group2, cfg)
	seen1 := make(map[string]struct{}, len(group1))
	seen2 := make(map[string]struct{}, len(group2))

	// 2) Greedy pass over the heap-ordered stream.
	var (
		e       pq.Entry[Pair]
		ok      bool
		in1     bool
		in2     bool
		dropped int
	)
	for {
		e, ok = heap.Dequeue()
		if !ok {
			break
		}
		p := e.Content
		_, in1 = seen1[p.From]
		_, in2 = seen2[p.To]
		if in1 || in2 {
			dropped++
			log.Trace().Str("from", p.From).Str("to", p.To).Int("distance", p.Distance).Msg("pair rejected")
			continue
		}

		seen1[p.From] = struct{}{}
		seen2[p.To] = struct{}{}
		matches[p.From] = p.To
		log.Debug().Str("from", p.From).Str("to", p.To).Int("distance", p.Distance).Msg("pair matched")

		// 3) One side exhausted: remaining entries are never processed.
		if len(seen1) == len(group1) || len(seen2) == len(group2) {
			break
		}
	}

	log.Debug().
		Int("matched", len(matches)).
		Int("rejected", dropped).
		Int("unprocessed", heap.Len()).
		Msg("greedy pass finished")

	return matches
}

// Locate runs Match and returns the group2 member matched with name.
//
// Returns an error wrapping ErrNotFound when name has no match, which
// happens when name is not a key of group1 or either group is empty.
func Locate(group1, group2 Group, name string, opts ...Option) (Target, error) {
	matches := Match(group1, group2, opts...)

	to, ok := matches[name]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return Target{Name: to, Point: group2[to]}, nil
}

// MustLocate is like Locate but panics when name has no match.
// Use it only where the caller guarantees that name is a member of group1.
func MustLocate(group1, group2 Group, name string, opts ...Option) Target {
	t, err := Locate(group1, group2, name, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

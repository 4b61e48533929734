package locator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/locator/locator"
)

// BenchmarkMatch measures a 100x100 greedy pass (10k heap entries).
func BenchmarkMatch(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g1 := randomGroup(r, "g", 100)
	g2 := randomGroup(r, "h", 100)
	b.ResetTimer() // exclude group construction
	for i := 0; i < b.N; i++ {
		_ = locator.Match(g1, g2)
	}
}

// BenchmarkMatch_LexicographicTies measures the same pass with the secondary order enabled.
func BenchmarkMatch_LexicographicTies(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g1 := randomGroup(r, "g", 100)
	g2 := randomGroup(r, "h", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = locator.Match(g1, g2, locator.WithLexicographicTies())
	}
}

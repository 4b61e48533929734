// Package locator_test provides examples demonstrating the greedy target locator.
package locator_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/locator/locator"
)

// ExampleLocate matches two squads and asks who each member of the first
// squad ended up paired with.
func ExampleLocate() {
	// 1) Two groups of named coordinates.
	heroes := locator.Group{"A": {X: 0, Y: 0}, "B": {X: 10, Y: 10}}
	targets := locator.Group{"X": {X: 1, Y: 0}, "Y": {X: 9, Y: 9}}

	// 2) A-X (1) is the closest pair overall, then B-Y (2).
	for _, name := range heroes.Names() {
		t, err := locator.Locate(heroes, targets, name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(name, "->", t.Name, t.X, t.Y)
	}
	// Output:
	// A -> X 1 0
	// B -> Y 9 9
}

// ExampleMatch shows that the pass stops once the smaller side is exhausted.
func ExampleMatch() {
	g1 := locator.Group{"Solo": {X: 0, Y: 0}}
	g2 := locator.Group{"Near": {X: 1, Y: 1}, "Mid": {X: 5, Y: 5}, "Far": {X: 20, Y: 0}}

	m := locator.Match(g1, g2)
	fmt.Println(m.Len(), m["Solo"])
	// Output: 1 Near
}

// ExampleLocate_notFound shows the recoverable not-found result.
func ExampleLocate_notFound() {
	_, err := locator.Locate(locator.Group{}, locator.Group{"X": {}}, "A")
	fmt.Println(errors.Is(err, locator.ErrNotFound))
	fmt.Println(err)
	// Output:
	// true
	// locator: element not found in match set: "A"
}

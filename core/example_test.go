package core_test

import (
	"fmt"

	"github.com/katalvlaran/togglepath/core"
)

// ExampleToggle flips the lights of one button press.
func ExampleToggle() {
	s := core.ToggleState{false, false, false, false}
	s = core.Toggle(s, core.MustEdge(1, 3))
	s = core.Toggle(s, core.MustEdge(3))
	fmt.Println(s)
	// Output: .#..
}

// ExampleIncrementAll applies a composition of repeat counts in one step.
func ExampleIncrementAll() {
	target := core.CounterState{3, 5, 4, 7}
	edges := []core.Edge{core.MustEdge(3), core.MustEdge(1, 3)}

	next := core.IncrementAll(core.CounterState{0, 0, 0, 0}, edges, []int{2, 5})
	fmt.Println(next, core.Overshoots(next, target))
	// Output: {0,5,0,7} false
}

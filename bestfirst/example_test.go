package bestfirst_test

import (
	"fmt"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/core"
)

// ExampleSolve drives four counters to {3,5,4,7} with ten presses.
func ExampleSolve() {
	g, err := core.NewCounterGraph(
		[]int{3, 5, 4, 7},
		[]core.Edge{
			core.MustEdge(3),
			core.MustEdge(1, 3),
			core.MustEdge(2),
			core.MustEdge(2, 3),
			core.MustEdge(0, 2),
			core.MustEdge(0, 1),
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bestfirst.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Cost)
	// Output: solved 10
}

// ExampleResult_Err shows an instance no composition can satisfy.
func ExampleResult_Err() {
	g, _ := core.NewCounterGraph([]int{2, 3}, []core.Edge{core.MustEdge(0, 1)})

	res, _ := bestfirst.Solve(g)
	fmt.Println(res.Outcome)
	fmt.Println(res.Err())
	// Output:
	// infeasible
	// bestfirst: instance is infeasible
}

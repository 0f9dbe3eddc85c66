// Package dijkstra_test provides examples demonstrating the oriented solver.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleSolve computes the cheapest route through a 4×4 open square:
// three steps right, one 90° turn, three steps down.
func ExampleSolve() {
	g := maze.MustParse("S...\n....\n....\n...E")

	res, err := dijkstra.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	best, err := res.Best()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(best)
	// Output: 1006
}

// ExampleSolve_customCosts shows that only the cost model decides prices.
func ExampleSolve_customCosts() {
	g := maze.MustParse("S...\n....\n....\n...E")

	res, _ := dijkstra.Solve(g, dijkstra.WithCosts(cost.Model{Move: 10, Turn: 1}))
	best, _ := res.Best()
	fmt.Println(best)
	// Output: 61
}

// ExampleResult_Best_unreachable handles a maze with no route.
func ExampleResult_Best_unreachable() {
	g := maze.MustParse("S#E")

	res, _ := dijkstra.Solve(g)
	if _, err := res.Best(); errors.Is(err, dijkstra.ErrUnreachable) {
		fmt.Println("no route")
	}
	// Output: no route
}

// Package lvmaze finds minimum-cost routes through grids where the cost of
// a move depends on which way the traveller is facing.
//
// 🧭 What is lvmaze?
//
//	A small, dependency-light toolkit that extends Dijkstra's algorithm to
//	oriented states:
//		• Grid model: parse text mazes into immutable Open/Blocked grids
//		• Oriented states: (position, facing) with straight / left / right moves
//		• Cost model: configurable step and turn prices (default 1 and 1000)
//		• Solver: Dijkstra over oriented states, keeping every optimal predecessor
//		• Paths: every cell on at least one cheapest route, or one concrete route
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/      — Position, Direction, Grid, Parse, Render
//	cost/      — Cost, Model, saturating Add
//	orient/    — State, Successors, Predecessors, dense indexing
//	dijkstra/  — Solve, Result (distances, predecessor sets, Best)
//	paths/     — States, Cells, Count, One
//	cmd/lvmaze — command-line front end
//
// Quick ASCII example (start facing right, turn costs 1000):
//
//	S...        SOOO
//	....   →    ...O    cost 1006, 7 cells
//	....        ...O
//	...E        ...E
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze

// Version is the release of the module.
const Version = "0.1.0"

package dijkstra

import (
	"sort"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/orient"
)

// Result holds the distance and predecessor tables of one Solve call.
// It is read-only and safe for concurrent readers.
type Result struct {
	g     *maze.Grid
	costs cost.Model
	start orient.State
	dist  []cost.Cost
	pred  [][]int
	stats Stats
}

// Grid returns the solved grid.
func (res *Result) Grid() *maze.Grid { return res.g }

// Costs returns the cost model used.
func (res *Result) Costs() cost.Model { return res.costs }

// Start returns the start state.
func (res *Result) Start() orient.State { return res.start }

// Stats returns search counters.
func (res *Result) Stats() Stats { return res.stats }

// Distance returns the minimum cost from the start state to s, and false if
// s is unreachable or outside the grid.
func (res *Result) Distance(s orient.State) (cost.Cost, bool) {
	if !res.g.InBounds(s.Pos) || !s.Dir.Valid() {
		return cost.Unreached, false
	}
	d := res.dist[orient.Index(res.g, s)]

	return d, d != cost.Unreached
}

// Predecessors returns the states from which s is entered on some
// minimum-cost route, sorted by orient.State order. The start state and
// unreachable states have none.
func (res *Result) Predecessors(s orient.State) []orient.State {
	if !res.g.InBounds(s.Pos) || !s.Dir.Valid() {
		return nil
	}
	idx := res.pred[orient.Index(res.g, s)]
	if len(idx) == 0 {
		return nil
	}
	out := make([]orient.State, len(idx))
	for i, p := range idx {
		out[i] = orient.FromIndex(res.g, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Best returns the minimum cost over all four directions at the end cell,
// or ErrUnreachable when none of them was reached.
func (res *Result) Best() (cost.Cost, error) {
	best := cost.Unreached
	for _, d := range maze.Directions {
		if c, ok := res.Distance(orient.State{Pos: res.g.End(), Dir: d}); ok && c < best {
			best = c
		}
	}
	if best == cost.Unreached {
		return 0, ErrUnreachable
	}

	return best, nil
}

// OptimalEnds returns the end-cell states whose distance equals Best, in
// direction order, or ErrUnreachable.
func (res *Result) OptimalEnds() ([]orient.State, error) {
	best, err := res.Best()
	if err != nil {
		return nil, err
	}
	var out []orient.State
	for _, d := range maze.Directions {
		s := orient.State{Pos: res.g.End(), Dir: d}
		if c, _ := res.Distance(s); c == best {
			out = append(out, s)
		}
	}

	return out, nil
}

// Reached returns the number of states with a finite distance.
func (res *Result) Reached() int {
	n := 0
	for _, d := range res.dist {
		if d != cost.Unreached {
			n++
		}
	}

	return n
}

package paths

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/orient"
)

// ErrNilResult indicates a nil *dijkstra.Result.
var ErrNilResult = errors.New("paths: result is nil")

// States returns every oriented state that lies on at least one
// minimum-cost route from the start state to the end cell.
// Complexity: O(S) time and memory, S = number of reached states.
func States(res *dijkstra.Result) (mapset.Set[orient.State], error) {
	if res == nil {
		return mapset.New[orient.State](), ErrNilResult
	}
	ends, err := res.OptimalEnds()
	if err != nil {
		return mapset.New[orient.State](), err
	}

	start := res.Start()
	visited := mapset.New[orient.State]()
	stack := make([]orient.State, 0, len(ends))
	for _, e := range ends {
		visited.Put(e)
		stack = append(stack, e)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		preds := res.Predecessors(s)
		if len(preds) == 0 && s != start {
			panic(fmt.Sprintf("paths: optimal state %v has no predecessor", s))
		}
		for _, p := range preds {
			if visited.Has(p) {
				continue
			}
			visited.Put(p)
			stack = append(stack, p)
		}
	}

	return visited, nil
}

// Cells returns the positions lying on at least one minimum-cost route.
// A position reached in several directions is counted once.
func Cells(res *dijkstra.Result) (mapset.Set[maze.Position], error) {
	states, err := States(res)
	if err != nil {
		return mapset.New[maze.Position](), err
	}
	cells := mapset.New[maze.Position]()
	states.Each(func(s orient.State) {
		cells.Put(s.Pos)
	})

	return cells, nil
}

// Count returns the number of cells on at least one minimum-cost route.
func Count(res *dijkstra.Result) (int, error) {
	cells, err := Cells(res)
	if err != nil {
		return 0, err
	}

	return cells.Size(), nil
}

// One returns a single minimum-cost route as the sequence of oriented states
// from the start state to an optimal end state, both included. Turns appear
// as consecutive states at the same position. Among ties it takes the
// smallest end state and, walking back, the smallest predecessor, so the
// result is the same on every call.
func One(res *dijkstra.Result) ([]orient.State, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	ends, err := res.OptimalEnds()
	if err != nil {
		return nil, err
	}

	start := res.Start()
	route := []orient.State{ends[0]}
	for cur := ends[0]; cur != start; {
		preds := res.Predecessors(cur)
		if len(preds) == 0 {
			panic(fmt.Sprintf("paths: optimal state %v has no predecessor", cur))
		}
		cur = preds[0]
		route = append(route, cur)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}

// Sorted returns the positions of set in row-major order.
func Sorted(set mapset.Set[maze.Position]) []maze.Position {
	out := make([]maze.Position, 0, set.Size())
	set.Each(func(p maze.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

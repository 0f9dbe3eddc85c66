// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// oriented states of a maze.Grid, keeping every optimal predecessor.
//
// The search space is the set of (position, direction) states, rows×cols×4 in
// total. Edges are the transitions of orient.Successors: a forward step or a
// 90° turn in place, each priced by a cost.Model.
//
// Complexity:
//
//   - Time:  O(S log S) where S = rows×cols×4
//   - Each state is settled at most once; each settle relaxes ≤ 3 transitions.
//   - Each heap operation (Push/Pop) costs O(log N), N ≤ 3S.
//   - Space: O(S)
//   - Dense distance, settled and predecessor tables indexed by orient.Index.
//   - Predecessor sets hold at most three entries each.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Relaxation accepts ties (<=): an equal-cost route adds its source to the
//     predecessor set, a strictly better one replaces the set.
//   - We never stop early at the end cell; the end may be reached facing any
//     direction, so the queue is always exhausted.
//   - Heap order is (distance, state) so runs are fully deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/orient"
)

// Solve computes, for every oriented state reachable from the grid's start
// state (g.Start() facing g.StartDir()), its minimum cumulative cost and the
// set of predecessor states achieving it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The cost model must validate (ErrBadCosts wrapping the cost error).
//
// Internal invariant violations (a settled distance decreasing, a move into a
// Blocked cell, an unreached state on the heap) panic.
//
// Complexity:
//
//   - Time:  O(S log S), S = rows×cols×4
//   - Space: O(S)
func Solve(g *maze.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Costs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCosts, err)
	}

	// 2) Prepare dense tables.
	n := orient.Count(g)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]cost.Cost, n),
		pred:    make([][]int, n),
		settled: make([]bool, n),
		pq:      make(statePQ, 0, g.Size()),
	}

	cfg.Logger.Debug("solve start",
		"rows", g.Rows(), "cols", g.Cols(),
		"start", g.Start().String(), "dir", g.StartDir().String(),
		"end", g.End().String(), "costs", cfg.Costs.String())

	// 3) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	res := &Result{
		g:     g,
		costs: cfg.Costs,
		start: orient.State{Pos: g.Start(), Dir: g.StartDir()},
		dist:  r.dist,
		pred:  r.pred,
		stats: r.stats,
	}
	best, err := res.Best()
	cfg.Logger.Debug("solve done",
		"settled", r.stats.Settled, "pushed", r.stats.Pushed,
		"stale", r.stats.Stale, "ties", r.stats.Ties,
		"best", best, "reachable", err == nil)

	return res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *maze.Grid  // The input grid; read-only within Solve.
	options Options     // Costs, logger and hooks.
	dist    []cost.Cost // State index → current best distance from start.
	pred    [][]int     // State index → predecessor state indices at that distance.
	settled []bool      // Tracks if a state's distance is final.
	pq      statePQ     // Min-heap of stateItem for lazy priority queue.
	stats   Stats
}

// init sets every distance to Unreached and pushes the start state at 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = cost.Unreached
	}
	start := orient.State{Pos: r.g.Start(), Dir: r.g.StartDir()}
	si := orient.Index(r.g, start)
	r.dist[si] = 0

	heap.Init(&r.pq)
	r.push(si, start, 0)
}

// process is the core loop. It repeatedly pops the entry with the smallest
// (distance, state) and, unless the entry is stale, settles the state and
// relaxes its transitions. It returns when the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(stateItem)
		u := item.idx

		if r.dist[u] == cost.Unreached {
			panic(fmt.Sprintf("dijkstra: popped %v with no recorded distance", item.state))
		}
		// Superseded by a smaller distance, or an equal-cost duplicate of a
		// state that is already settled.
		if item.dist > r.dist[u] || r.settled[u] {
			r.stats.Stale++
			r.options.OnStale(item.state, item.dist)
			continue
		}

		r.settled[u] = true
		r.stats.Settled++
		r.options.OnSettle(item.state, item.dist)

		r.relax(u, item.state)
	}
}

// relax proposes dist[u]+cost for each transition out of state s (index u).
//
//   - cand <  dist[v]: dist[v] = cand, pred[v] = {u}, push v.
//   - cand == dist[v]: pred[v] ∪= {u}; push v unless it is already settled.
//   - cand >  dist[v]: ignored.
func (r *runner) relax(u int, s orient.State) {
	du := r.dist[u]
	for _, t := range orient.Successors(r.g, r.options.Costs, s) {
		if t.Kind == orient.Straight && r.g.At(t.To.Pos) != maze.Open {
			panic(fmt.Sprintf("dijkstra: transition %v -> %v enters a blocked cell", s, t.To))
		}
		v := orient.Index(r.g, t.To)
		cand := cost.Add(du, t.Cost)

		switch {
		case cand < r.dist[v]:
			if r.settled[v] {
				panic(fmt.Sprintf("dijkstra: settled state %v improved from %d to %d", t.To, r.dist[v], cand))
			}
			r.dist[v] = cand
			r.pred[v] = append(r.pred[v][:0], u)
			r.options.OnRelax(s, t.To, cand, false)
			r.push(v, t.To, cand)

		case cand == r.dist[v] && cand != cost.Unreached:
			if !containsInt(r.pred[v], u) {
				r.pred[v] = append(r.pred[v], u)
				r.stats.Ties++
			}
			r.options.OnRelax(s, t.To, cand, true)
			if !r.settled[v] {
				r.push(v, t.To, cand)
			}
		}
	}
}

func (r *runner) push(idx int, s orient.State, d cost.Cost) {
	heap.Push(&r.pq, stateItem{idx: idx, state: s, dist: d})
	r.stats.Pushed++
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}

	return false
}

// stateItem is a heap entry: a state and the distance it was pushed with.
type stateItem struct {
	idx   int          // orient.Index of state
	state orient.State // the state itself, for ordering and hooks
	dist  cost.Cost    // distance at push time
}

// statePQ is a min-heap of stateItem ordered by dist, then by state.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to the state order so
// that pop order never depends on insertion history.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].state.Less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

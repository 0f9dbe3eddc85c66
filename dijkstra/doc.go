// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// oriented states of a maze.Grid, recording every optimal predecessor so
// that all minimum-cost routes (not just one) can be recovered.
//
// Overview:
//
//   - A state is a grid position plus a facing direction (orient.State). From
//     any state the traveller may step forward into an Open cell or turn 90°
//     in place; both transitions are priced by a cost.Model.
//   - Solve explores every state reachable from the start state and returns a
//     Result holding the minimum distance of each state and its predecessor
//     set: the states from which it is entered on some minimum-cost route.
//   - Result.Best takes the minimum over the four directions at the end cell.
//     When none is reached it returns ErrUnreachable rather than a number.
//   - Package paths walks the predecessor sets backwards to mark every cell on
//     at least one optimal route.
//
// Relaxation rule:
//
//   - candidate <  best: best = candidate, predecessors = {source}.
//   - candidate == best: predecessors ∪= {source}.
//   - candidate >  best: ignored.
//
// Equal-cost relaxation is what keeps every tie; a strict improvement always
// clears the set first, so no stale tie survives.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = rows×cols×4 states, out-degree ≤ 3.
//   - Space: O(S) for dense distance, settled and predecessor tables, plus
//     O(S) heap entries under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     Solve was given a nil grid.
//   - ErrBadCosts:    the cost model failed cost.Model.Validate.
//   - ErrUnreachable: Result.Best / OptimalEnds found no route to the end.
//
// Broken internal invariants panic: a wrong answer from a shortest-path
// engine is worse than a crash.
//
// API reference:
//
//	func Solve(g *maze.Grid, opts ...Option) (*Result, error)
//
//	  - WithCosts(cost.Model):   step/turn prices (default 1/1000).
//	  - WithLogger(*slog.Logger): Debug records at start and finish.
//	  - WithOnSettle / WithOnRelax / WithOnStale: observation hooks.
//
// Thread safety:
//
//   - Each Solve owns its tables; concurrent Solve calls on the same grid are
//     safe because grids are immutable. A Result is read-only.
package dijkstra

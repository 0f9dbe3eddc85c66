// Package paths recovers minimum-cost routes from a dijkstra.Result.
//
// The solver records, for each oriented state, every predecessor that
// achieves its minimum distance. Walking those sets backwards from each
// optimal end state to the start yields exactly the states, and therefore
// the cells, lying on at least one minimum-cost route.
//
// The walk uses an explicit worklist with a visited set, so its stack usage
// does not grow with route length and shared ancestors are expanded once.
//
//   - States: every oriented state on some optimal route.
//   - Cells:  the positions of those states.
//   - Count:  the number of such cells.
//   - One:    a single optimal route, start to end, chosen deterministically.
//
// All functions return dijkstra.ErrUnreachable when the end cell has no route.
package paths

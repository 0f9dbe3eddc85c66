package orient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/orient"
)

// grid used throughout:
//
//	S.#
//	..E
var small = maze.MustParse("S.#\n..E")

func TestSuccessors_OpenAhead(t *testing.T) {
	got := orient.Successors(small, cost.Default(), orient.At(0, 0, maze.Right))
	require.Len(t, got, 3)
	assert.Equal(t, orient.Transition{To: orient.At(0, 1, maze.Right), Kind: orient.Straight, Cost: 1}, got[0])
	assert.Equal(t, orient.Transition{To: orient.At(0, 0, maze.Up), Kind: orient.TurnLeft, Cost: 1000}, got[1])
	assert.Equal(t, orient.Transition{To: orient.At(0, 0, maze.Down), Kind: orient.TurnRight, Cost: 1000}, got[2])
}

func TestSuccessors_WallAndEdge(t *testing.T) {
	// Wall ahead.
	got := orient.Successors(small, cost.Default(), orient.At(0, 1, maze.Right))
	require.Len(t, got, 2)
	assert.Equal(t, orient.TurnLeft, got[0].Kind)
	assert.Equal(t, orient.TurnRight, got[1].Kind)

	// Grid edge ahead.
	got = orient.Successors(small, cost.Default(), orient.At(0, 0, maze.Up))
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.Equal(t, maze.Pos(0, 0), tr.To.Pos, "turns stay in place")
	}
}

func TestSuccessors_NeverReverses(t *testing.T) {
	for _, d := range maze.Directions {
		for _, tr := range orient.Successors(small, cost.Default(), orient.State{Pos: maze.Pos(1, 1), Dir: d}) {
			assert.NotEqual(t, d.Opposite(), tr.To.Dir, "direct reversal from %v", d)
		}
	}
}

func TestSuccessors_UsesModel(t *testing.T) {
	m := cost.Model{Move: 3, Turn: 11}
	for _, tr := range orient.Successors(small, m, orient.At(1, 0, maze.Right)) {
		switch tr.Kind {
		case orient.Straight:
			assert.Equal(t, cost.Cost(3), tr.Cost)
		default:
			assert.Equal(t, cost.Cost(11), tr.Cost)
		}
	}
}

// TestPredecessors_InverseOfSuccessors checks the two relations agree on
// every state of the grid.
func TestPredecessors_InverseOfSuccessors(t *testing.T) {
	m := cost.Default()
	forward := make(map[[2]orient.State]orient.Transition)
	for i := 0; i < orient.Count(small); i++ {
		s := orient.FromIndex(small, i)
		if !small.IsOpen(s.Pos) {
			continue
		}
		for _, tr := range orient.Successors(small, m, s) {
			forward[[2]orient.State{s, tr.To}] = tr
		}
	}
	backward := 0
	for i := 0; i < orient.Count(small); i++ {
		s := orient.FromIndex(small, i)
		if !small.IsOpen(s.Pos) {
			continue
		}
		for _, tr := range orient.Predecessors(small, m, s) {
			fw, ok := forward[[2]orient.State{tr.To, s}]
			require.True(t, ok, "%v -> %v not a successor", tr.To, s)
			assert.Equal(t, fw.Kind, tr.Kind)
			assert.Equal(t, fw.Cost, tr.Cost)
			backward++
		}
	}
	assert.Equal(t, len(forward), backward)
}

func TestIndexRoundTrip(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < orient.Count(small); i++ {
		s := orient.FromIndex(small, i)
		require.Equal(t, i, orient.Index(small, s))
		seen[i] = true
	}
	assert.Len(t, seen, 2*3*4)
}

func TestLess_TotalOrder(t *testing.T) {
	a := orient.At(0, 1, maze.Left)
	b := orient.At(1, 0, maze.Up)
	c := orient.At(1, 0, maze.Right)
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(b))
	assert.False(t, b.Less(b))
}

package orient

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/maze"
)

// State is a position plus a facing direction. Two states are equal iff
// both fields match; State is comparable and usable as a map or set key.
type State struct {
	Pos maze.Position
	Dir maze.Direction
}

// At is shorthand for State{Pos: maze.Pos(row, col), Dir: d}.
func At(row, col int, d maze.Direction) State {
	return State{Pos: maze.Pos(row, col), Dir: d}
}

// Less orders states by position (row-major), then by direction.
func (s State) Less(t State) bool {
	if s.Pos != t.Pos {
		return s.Pos.Less(t.Pos)
	}

	return s.Dir < t.Dir
}

func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Pos, s.Dir)
}

// Count returns the number of distinct states of g: rows×cols×4.
func Count(g *maze.Grid) int {
	return g.Size() * maze.NumDirections
}

// Index maps s to its dense index in [0, Count(g)).
func Index(g *maze.Grid, s State) int {
	return g.Index(s.Pos)*maze.NumDirections + int(s.Dir)
}

// FromIndex is the inverse of Index.
func FromIndex(g *maze.Grid, i int) State {
	return State{Pos: g.Position(i / maze.NumDirections), Dir: maze.Direction(i % maze.NumDirections)}
}

// Kind distinguishes the three transition shapes.
type Kind uint8

const (
	Straight Kind = iota
	TurnLeft
	TurnRight
)

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Transition is one edge of the oriented state graph.
type Transition struct {
	To   State
	Kind Kind
	Cost cost.Cost
}

// Successors returns the feasible transitions out of s, in the fixed order
// straight, left, right. The straight transition is omitted when the cell
// ahead is outside the grid or Blocked. The result never has more than
// three entries.
// Complexity: O(1).
func Successors(g *maze.Grid, m cost.Model, s State) []Transition {
	out := make([]Transition, 0, 3)
	if ahead := s.Dir.Ahead(s.Pos); g.IsOpen(ahead) {
		out = append(out, Transition{To: State{Pos: ahead, Dir: s.Dir}, Kind: Straight, Cost: m.Move})
	}
	out = append(out,
		Transition{To: State{Pos: s.Pos, Dir: s.Dir.Left()}, Kind: TurnLeft, Cost: m.Turn},
		Transition{To: State{Pos: s.Pos, Dir: s.Dir.Right()}, Kind: TurnRight, Cost: m.Turn},
	)

	return out
}

// Predecessors returns the transitions that lead into s, expressed with To
// set to the source state. It is the exact inverse of Successors: t is in
// Predecessors(s) iff s is reachable from t.To by one Successors step of the
// same kind and cost. The straight predecessor is omitted when s itself is
// not Open or the cell behind s is outside the grid or Blocked.
// Complexity: O(1).
func Predecessors(g *maze.Grid, m cost.Model, s State) []Transition {
	out := make([]Transition, 0, 3)
	if behind := s.Dir.Opposite().Ahead(s.Pos); g.IsOpen(behind) && g.IsOpen(s.Pos) {
		out = append(out, Transition{To: State{Pos: behind, Dir: s.Dir}, Kind: Straight, Cost: m.Move})
	}
	// Turning left into s means the source faced s.Dir.Right(), and vice versa.
	out = append(out,
		Transition{To: State{Pos: s.Pos, Dir: s.Dir.Right()}, Kind: TurnLeft, Cost: m.Turn},
		Transition{To: State{Pos: s.Pos, Dir: s.Dir.Left()}, Kind: TurnRight, Cost: m.Turn},
	)

	return out
}

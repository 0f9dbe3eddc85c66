package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal facings. The numeric order
// Up < Right < Down < Left is clockwise and is relied on for deterministic
// ordering and for dense table indexing.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of cardinal directions.
const NumDirections = 4

// Directions lists all directions in their total order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// row/col deltas indexed by Direction.
var deltas = [NumDirections][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Right returns the direction rotated 90° clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % NumDirections
}

// Left returns the direction rotated 90° counter-clockwise.
func (d Direction) Left() Direction {
	return (d + NumDirections - 1) % NumDirections
}

// Delta returns the row and column offsets of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	o := deltas[d]

	return o[0], o[1]
}

// Ahead returns the position one step from p in direction d. The result may
// lie outside the grid; check it with Grid.InBounds.
func (d Direction) Ahead(p Position) Position {
	dr, dc := d.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a name ("up", "right", "down", "left", or the
// first letter / compass letter "n", "e", "s", "w") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north", "n", "^":
		return Up, nil
	case "right", "r", "east", "e", ">":
		return Right, nil
	case "down", "d", "south", "s", "v":
		return Down, nil
	case "left", "l", "west", "w", "<":
		return Left, nil
	}

	return 0, fmt.Errorf("maze: unknown direction %q", s)
}

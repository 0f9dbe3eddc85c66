package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates the input has no start marker.
	ErrMissingStart = errors.New("maze: start marker not found")
	// ErrMissingEnd indicates the input has no end marker.
	ErrMissingEnd = errors.New("maze: end marker not found")
	// ErrDuplicateMarker indicates a start or end marker appears more than once.
	ErrDuplicateMarker = errors.New("maze: duplicate start or end marker")
	// ErrUnknownCell indicates a character that is not a known cell kind.
	ErrUnknownCell = errors.New("maze: unrecognized cell character")
	// ErrOutOfBounds indicates a start or end position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrBlockedEndpoint indicates the start or end cell is Blocked.
	ErrBlockedEndpoint = errors.New("maze: start and end cells must be open")
)

// CellError reports an unrecognised character at a given row and column.
type CellError struct {
	Row, Col int
	Char     rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("maze: unrecognized cell %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrUnknownCell.
func (e *CellError) Unwrap() error { return ErrUnknownCell }

// Text markers understood by Parse and produced by Render.
const (
	RuneOpen    = '.'
	RuneBlocked = '#'
	RuneStart   = 'S'
	RuneEnd     = 'E'
	RuneMarked  = 'O'
)

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	// Open cells can be entered.
	Open Cell = iota
	// Blocked cells are walls.
	Blocked
)

// Rune returns the text marker of the cell kind.
func (c Cell) Rune() rune {
	if c == Blocked {
		return RuneBlocked
	}

	return RuneOpen
}

func (c Cell) String() string {
	switch c {
	case Open:
		return "Open"
	case Blocked:
		return "Blocked"
	}

	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rows×cols matrix of cells with a designated start
// cell, start facing and end cell. It must be built with New or Parse.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	start, end Position
	startDir   Direction
}

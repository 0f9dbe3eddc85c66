package maze

import (
	"fmt"
	"strings"
)

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	startDir Direction
}

// WithStartDirection sets the direction faced at the start cell.
// Default is Right. Panics on an invalid direction.
func WithStartDirection(d Direction) ParseOption {
	if !d.Valid() {
		panic(fmt.Sprintf("maze: invalid start direction %d", d))
	}

	return func(o *parseOptions) {
		o.startDir = d
	}
}

// Parse builds a Grid from its text form. Each line is one row; '.' is Open,
// '#' is Blocked, 'S' and 'E' mark the start and end cells (both Open).
// Carriage returns are stripped and trailing blank lines ignored, so files
// with CRLF endings or a final newline parse cleanly.
//
// Any malformed input is fatal and no partial grid is returned:
// ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingEnd,
// ErrDuplicateMarker, or a *CellError wrapping ErrUnknownCell.
// Complexity: O(len(text)).
func Parse(text string, opts ...ParseOption) (*Grid, error) {
	cfg := parseOptions{startDir: Right}
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		start, end         Position
		haveStart, haveEnd bool
	)
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		c := 0
		for _, ch := range line {
			switch ch {
			case RuneOpen:
				row = append(row, Open)
			case RuneBlocked:
				row = append(row, Blocked)
			case RuneStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at row %d, col %d", ErrDuplicateMarker, ch, r, c)
				}
				start, haveStart = Position{Row: r, Col: c}, true
				row = append(row, Open)
			case RuneEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second %q at row %d, col %d", ErrDuplicateMarker, ch, r, c)
				}
				end, haveEnd = Position{Row: r, Col: c}, true
				row = append(row, Open)
			default:
				return nil, &CellError{Row: r, Col: c, Char: ch}
			}
			c++
		}
		cells[r] = row
	}

	// Shape errors take priority over marker errors.
	if len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for r, row := range cells {
		if len(row) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), len(cells[0]))
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return New(cells, start, end, cfg.startDir)
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal grids.
func MustParse(text string, opts ...ParseOption) *Grid {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

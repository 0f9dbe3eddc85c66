package maze

import "fmt"

// New constructs a Grid from a non-empty, rectangular matrix of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if start or end
// lies outside the grid, and ErrBlockedEndpoint if either is Blocked.
// An invalid dir panics: it is never produced by ParseDirection.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]Cell, start, end Position, dir Direction) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !dir.Valid() {
		panic(fmt.Sprintf("maze: invalid start direction %d", dir))
	}
	h, w := len(cells), len(cells[0])
	for i, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	// Deep copy into a flat row-major slice
	flat := make([]Cell, 0, h*w)
	for _, row := range cells {
		flat = append(flat, row...)
	}
	g := &Grid{
		rows:     h,
		cols:     w,
		cells:    flat,
		start:    start,
		end:      end,
		startDir: dir,
	}
	for _, p := range [2]Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, h, w)
		}
		if g.At(p) != Open {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// End returns the end position.
func (g *Grid) End() Position { return g.end }

// StartDir returns the direction faced at the start.
func (g *Grid) StartDir() Direction { return g.startDir }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. It panics if p is out of bounds.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: position %v out of bounds for %dx%d grid", p, g.rows, g.cols))
	}

	return g.cells[g.Index(p)]
}

// IsOpen reports whether p is inside the grid and Open.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Open
}

// Index maps p to its row-major index: Row*Cols + Col.
// The caller is responsible for bounds; see InBounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Package maze models the immutable two-dimensional grid that the oriented
// shortest-path solver walks over.
//
// A Grid is a rows×cols matrix of cells, each either Open or Blocked, plus a
// designated start cell, the direction the traveller faces at the start, and
// an end cell. Start and end are always Open.
//
// Overview:
//
//   - Position is a (Row, Col) pair; it is a plain comparable value and can be
//     used as a map or set key.
//   - Direction is one of Up, Right, Down, Left (in that total order). It knows
//     its opposite, its 90° rotations and the position one step ahead.
//   - Grid is built either from a Cell matrix (New) or from text (Parse) and is
//     deep-copied on construction, so callers cannot mutate it afterwards.
//
// Text format accepted by Parse:
//
//	###########
//	#.......#E#
//	#.#.###.#.#
//	#S..#.....#
//	###########
//
//	'.' open cell, '#' blocked cell, 'S' start (open), 'E' end (open).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrMissingStart:    no 'S' marker.
//   - ErrMissingEnd:      no 'E' marker.
//   - ErrDuplicateMarker: more than one 'S' or 'E'.
//   - ErrUnknownCell:     unrecognised character (wrapped in *CellError).
//   - ErrOutOfBounds:     start or end outside the grid (New only).
//   - ErrBlockedEndpoint: start or end is Blocked (New only).
//
// Looking up a cell outside the grid with At is a programming error and
// panics; every position the solver asks about is derived from a valid move.
//
// Complexity: construction is O(rows×cols) time and memory; all lookups O(1).
package maze

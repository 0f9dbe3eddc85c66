// Package tui renders solved mazes for a terminal.
package tui

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvmaze/maze"
)

// Palette colours used for each kind of cell.
const (
	colorWall     = "#6b7280"
	colorPath     = "#f472b6"
	colorEndpoint = "#818cf8"
)

// Render writes g to out like maze.Render, colouring walls, marked cells and
// the endpoints according to out's colour profile. With the Ascii profile
// the output is identical to maze.Render.
func Render(out *termenv.Output, g *maze.Grid, mark func(maze.Position) bool) error {
	wall := out.String(string(maze.RuneBlocked)).Foreground(out.Color(colorWall)).String()
	path := out.String(string(maze.RuneMarked)).Foreground(out.Color(colorPath)).Bold().String()
	start := out.String(string(maze.RuneStart)).Foreground(out.Color(colorEndpoint)).Bold().String()
	end := out.String(string(maze.RuneEnd)).Foreground(out.Color(colorEndpoint)).Bold().String()

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := maze.Pos(r, c)
			switch {
			case p == g.Start():
				b.WriteString(start)
			case p == g.End():
				b.WriteString(end)
			case g.At(p) == maze.Blocked:
				b.WriteString(wall)
			case mark != nil && mark(p):
				b.WriteString(path)
			default:
				b.WriteRune(maze.RuneOpen)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())

	return err
}

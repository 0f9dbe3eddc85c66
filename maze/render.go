package maze

import "strings"

// Render returns the text form of g, one line per row with a trailing
// newline. Start and end are drawn as 'S' and 'E'; any other open cell for
// which mark returns true is drawn as 'O'. A nil mark draws the plain grid,
// which Parse accepts back unchanged.
func Render(g *Grid, mark func(Position) bool) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.start:
				b.WriteRune(RuneStart)
			case p == g.end:
				b.WriteRune(RuneEnd)
			case g.At(p) == Open && mark != nil && mark(p):
				b.WriteRune(RuneMarked)
			default:
				b.WriteRune(g.At(p).Rune())
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

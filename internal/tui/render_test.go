package tui_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/internal/tui"
	"github.com/katalvlaran/lvmaze/maze"
)

func TestRender_AsciiMatchesPlain(t *testing.T) {
	g := maze.MustParse("#####\n#S..#\n#.#.#\n#..E#\n#####")
	mark := func(p maze.Position) bool { return p.Row == 1 || p.Col == 3 }

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, tui.Render(out, g, mark))
	assert.Equal(t, maze.Render(g, mark), buf.String())
}

func TestRender_Colour(t *testing.T) {
	g := maze.MustParse("S.#E")

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))
	require.NoError(t, tui.Render(out, g, func(maze.Position) bool { return true }))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "O")
}

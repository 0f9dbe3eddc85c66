package paths_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/paths"
)

// BenchmarkCells measures reconstruction on a 201×201 open square, where
// the worklist visits a long single route without recursion.
// Complexity: O(S), S = reached states.
func BenchmarkCells(b *testing.B) {
	const n = 201
	rows := make([]string, n)
	for r := range rows {
		rows[r] = strings.Repeat(".", n)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "E"
	res, err := dijkstra.Solve(maze.MustParse(strings.Join(rows, "\n")))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := paths.Cells(res); err != nil {
			b.Fatal(err)
		}
	}
}

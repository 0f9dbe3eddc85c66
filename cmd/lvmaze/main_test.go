package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openSquare = "S...\n....\n....\n...E\n"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

func TestSolve_File(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMaze(t, openSquare))
	require.NoError(t, err)
	assert.Equal(t, "cost: 1006\ntiles: 7\n", out)
}

func TestSolve_StdinAndOverrides(t *testing.T) {
	out, _, err := run(t, openSquare, "solve", "-", "--move", "10", "--turn", "1")
	require.NoError(t, err)
	assert.Equal(t, "cost: 61\ntiles: 7\n", out)
}

func TestSolve_Render(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMaze(t, "S..\n##.\n##E\n"), "--render")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 1004\ntiles: 5\n")
	assert.Contains(t, out, "O")
}

func TestSolve_Unreachable(t *testing.T) {
	out, _, err := run(t, "", "solve", writeMaze(t, "S#E\n"))
	require.ErrorIs(t, err, errNoRoute)
	assert.Equal(t, "unreachable\n", out)
}

func TestSolve_Malformed(t *testing.T) {
	_, _, err := run(t, "", "solve", writeMaze(t, "S..\n.E\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errNoRoute)
}

func TestSolve_BadFlags(t *testing.T) {
	_, _, err := run(t, "", "solve", writeMaze(t, openSquare), "--turn", "0")
	require.Error(t, err)

	_, _, err = run(t, "", "solve", writeMaze(t, openSquare), "--dir", "sideways")
	require.Error(t, err)
}

func TestSolve_Metrics(t *testing.T) {
	_, errOut, err := run(t, "", "solve", writeMaze(t, openSquare), "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, errOut, "lvmaze_states_settled_total")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "lvmaze version 0.1.0\n", out)
}

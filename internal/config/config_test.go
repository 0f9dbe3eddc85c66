package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/maze"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	d, err := cfg.Direction()
	require.NoError(t, err)
	assert.Equal(t, maze.Right, d)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "lvmaze.yaml", `
costs:
  turn: 50
start_direction: up
log_level: debug
render: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cost.Model{Move: 1, Turn: 50}, cfg.Costs, "unset move keeps its default")
	assert.True(t, cfg.Render)

	d, err := cfg.Direction()
	require.NoError(t, err)
	assert.Equal(t, maze.Up, d)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "lvmaze.json", `{"costs": {"move": 2, "turn": 3}, "start_direction": "w"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cost.Model{Move: 2, Turn: 3}, cfg.Costs)
	d, err := cfg.Direction()
	require.NoError(t, err)
	assert.Equal(t, maze.Left, d)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero.yaml":      "costs: {move: 0}\n",
		"direction.yaml": "start_direction: diagonal\n",
		"level.yaml":     "log_level: shouty\n",
		"syntax.yaml":    "costs: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, name, body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(write(t, "zero2.yaml", "costs: {turn: 0}\n"))
	assert.ErrorIs(t, err, cost.ErrZeroTurn)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/logging"
	"github.com/katalvlaran/lvmaze/internal/metrics"
	"github.com/katalvlaran/lvmaze/internal/tui"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/paths"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a maze file",
		Long: `Reads the maze in FILE ("-" for stdin), prints the cheapest route cost and
the number of cells on at least one cheapest route. Exits with status 2 and
prints "unreachable" when no route exists.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	cmd.Flags().Uint64("move", 0, "Cost of one step forward (overrides config)")
	cmd.Flags().Uint64("turn", 0, "Cost of one 90° turn (overrides config)")
	cmd.Flags().String("dir", "", "Direction faced at the start: up, right, down, left (overrides config)")
	cmd.Flags().Bool("render", false, "Print the maze with cheapest-route cells marked")
	cmd.Flags().Bool("metrics", false, "Print solver metrics in Prometheus text format to stderr")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	dir, _ := cfg.Direction()
	g, err := maze.Parse(text, maze.WithStartDirection(dir))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)
	opts := append(collector.Options(), dijkstra.WithCosts(cfg.Costs), dijkstra.WithLogger(logger))

	began := time.Now()
	res, err := dijkstra.Solve(g, opts...)
	if err != nil {
		return err
	}
	cells, cellsErr := paths.Cells(res)
	collector.ObserveSolve(time.Since(began))

	if wantMetrics, _ := cmd.Flags().GetBool("metrics"); wantMetrics {
		if err := metrics.WriteText(cmd.ErrOrStderr(), reg); err != nil {
			logger.Warn("metrics dump failed", "error", err)
		}
	}

	out := cmd.OutOrStdout()
	best, err := res.Best()
	if errors.Is(err, dijkstra.ErrUnreachable) {
		fmt.Fprintln(out, "unreachable")
		return errNoRoute
	}
	if err != nil {
		return err
	}
	if cellsErr != nil {
		return cellsErr
	}
	fmt.Fprintf(out, "cost: %d\n", best)
	fmt.Fprintf(out, "tiles: %d\n", cells.Size())
	logger.Info("solved", "file", args[0], "cost", best, "tiles", cells.Size(), "states", res.Reached())

	if cfg.Render {
		return tui.Render(termenv.NewOutput(out), g, cells.Has)
	}

	return nil
}

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("move") {
		v, _ := flags.GetUint64("move")
		cfg.Costs.Move = cost.Cost(v)
	}
	if flags.Changed("turn") {
		v, _ := flags.GetUint64("turn")
		cfg.Costs.Turn = cost.Cost(v)
	}
	if flags.Changed("dir") {
		cfg.StartDirection, _ = flags.GetString("dir")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("render") {
		cfg.Render, _ = flags.GetBool("render")
	}

	return cfg, cfg.Validate()
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read maze from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read maze: %w", err)
	}

	return string(data), nil
}

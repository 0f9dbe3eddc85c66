// Package dijkstra defines the options, hooks and result types of the
// oriented-state Dijkstra search.
//
// Options:
//
//	– Costs:    the cost.Model consulted for every transition (default 1/1000).
//	– Logger:   *slog.Logger for Debug-level progress (default: discard).
//	– OnSettle: called when a state's distance becomes final.
//	– OnRelax:  called when a transition improves or ties a state's distance.
//	– OnStale:  called when a superseded queue entry is discarded.
//
// Errors (sentinel):
//
//	– ErrNilGrid      if the provided grid pointer is nil.
//	– ErrBadCosts     if the cost model fails validation (wraps the cost error).
//	– ErrUnreachable  from Result.Best when no route reaches the end cell.
package dijkstra

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/orient"
)

// Sentinel errors returned by the solver and its Result.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadCosts indicates that the configured cost model is invalid.
	ErrBadCosts = errors.New("dijkstra: invalid cost model")

	// ErrUnreachable indicates that no route reaches the end cell. It is a
	// valid outcome, not an input error.
	ErrUnreachable = errors.New("dijkstra: end is unreachable")
)

// Options configures a Solve call.
type Options struct {
	// Costs prices each transition.
	Costs cost.Model

	// Logger receives Debug-level progress records.
	Logger *slog.Logger

	// OnSettle is called once per state when its distance becomes final.
	OnSettle func(s orient.State, d cost.Cost)

	// OnRelax is called when the transition from→to yields a distance that
	// is strictly better (tie=false) or equal (tie=true) to the best known.
	OnRelax func(from, to orient.State, d cost.Cost, tie bool)

	// OnStale is called when a popped queue entry is discarded because its
	// state already has a smaller distance or was already settled.
	OnStale func(s orient.State, d cost.Cost)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithCosts sets the cost model. The model is validated by Solve.
func WithCosts(m cost.Model) Option {
	return func(o *Options) {
		o.Costs = m
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle installs the settle hook. A nil fn panics.
func WithOnSettle(fn func(s orient.State, d cost.Cost)) Option {
	if fn == nil {
		panic("dijkstra: OnSettle hook is nil")
	}

	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithOnRelax installs the relaxation hook. A nil fn panics.
func WithOnRelax(fn func(from, to orient.State, d cost.Cost, tie bool)) Option {
	if fn == nil {
		panic("dijkstra: OnRelax hook is nil")
	}

	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithOnStale installs the stale-entry hook. A nil fn panics.
func WithOnStale(fn func(s orient.State, d cost.Cost)) Option {
	if fn == nil {
		panic("dijkstra: OnStale hook is nil")
	}

	return func(o *Options) {
		o.OnStale = fn
	}
}

// DefaultOptions returns Options with the default cost model, a discarding
// logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Costs:    cost.Default(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnSettle: func(orient.State, cost.Cost) {},
		OnRelax:  func(orient.State, orient.State, cost.Cost, bool) {},
		OnStale:  func(orient.State, cost.Cost) {},
	}
}

// Stats summarises the work done by one Solve call.
type Stats struct {
	Settled int // states whose distance became final
	Pushed  int // queue insertions, including the start state
	Stale   int // popped entries discarded without expansion
	Ties    int // equal-cost relaxations that extended a predecessor set
}

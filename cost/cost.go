package cost

import (
	"errors"
	"fmt"
	"math"
)

// Cost is a cumulative or per-transition route cost.
type Cost = uint64

// Unreached marks a state with no known route.
const Unreached Cost = math.MaxUint64

// Default step and turn costs.
const (
	DefaultMove Cost = 1
	DefaultTurn Cost = 1000
)

// Sentinel errors returned by Validate and New.
var (
	// ErrZeroMove indicates a zero forward-step cost.
	ErrZeroMove = errors.New("cost: move cost must be positive")
	// ErrZeroTurn indicates a zero turn cost.
	ErrZeroTurn = errors.New("cost: turn cost must be positive")
	// ErrTooLarge indicates a cost equal to the Unreached sentinel.
	ErrTooLarge = errors.New("cost: cost must be below the unreached sentinel")
)

// Add returns a+b, saturating at Unreached.
func Add(a, b Cost) Cost {
	if a > Unreached-b {
		return Unreached
	}

	return a + b
}

// Model holds the per-transition costs.
//
// Move – cost of one step forward into the adjacent cell.
// Turn – cost of one 90° rotation in place.
type Model struct {
	Move Cost `yaml:"move" json:"move"`
	Turn Cost `yaml:"turn" json:"turn"`
}

// Default returns the model with Move=1 and Turn=1000.
func Default() Model {
	return Model{Move: DefaultMove, Turn: DefaultTurn}
}

// Reversal returns the cost of facing the opposite way: two 90° turns.
func (m Model) Reversal() Cost {
	return Add(m.Turn, m.Turn)
}

// Validate checks that both costs are positive and below Unreached, so
// every transition strictly increases the cumulative cost.
func (m Model) Validate() error {
	if m.Move == 0 {
		return ErrZeroMove
	}
	if m.Turn == 0 {
		return ErrZeroTurn
	}
	if m.Move == Unreached || m.Turn == Unreached {
		return ErrTooLarge
	}

	return nil
}

func (m Model) String() string {
	return fmt.Sprintf("move=%d turn=%d", m.Move, m.Turn)
}

// Option configures a Model built by New.
type Option func(*Model)

// WithMove sets the forward-step cost.
func WithMove(c Cost) Option {
	return func(m *Model) {
		m.Move = c
	}
}

// WithTurn sets the 90° turn cost.
func WithTurn(c Cost) Option {
	return func(m *Model) {
		m.Turn = c
	}
}

// New starts from Default, applies opts and validates the result.
func New(opts ...Option) (Model, error) {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}

	return m, nil
}

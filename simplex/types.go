// Package simplex: shared types, labels and solve options.

package simplex

import "github.com/katalvlaran/ratlp/frac"

// Well-known column and row labels of a tableau.
const (
	// ObjectiveLabel tags both the objective-value column and the
	// objective row's basic-variable slot.
	ObjectiveLabel = "P"

	// RHSLabel tags the trailing right-hand-side column.
	RHSLabel = "RHS"
)

// Prefixes for generated column labels: decision variables are
// x1..xn, slack variables s1..sm.
const (
	decisionPrefix = "x"
	slackPrefix    = "s"
)

// Decision maps a variable label to its optimal value. It is built once,
// after termination: every labeled row contributes its RHS value (the
// objective row contributes ObjectiveLabel → objective value), and every
// header variable that is not basic is assigned 0.
type Decision map[string]frac.Fraction

// Sink consumes tableau snapshots for progressive display. Solve hands
// each Sink a deep clone, so implementations may retain or mutate what
// they receive without disturbing the running solve.
type Sink interface {
	Snapshot(t *Tableau)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(*Tableau)

// Snapshot calls f(t).
func (f SinkFunc) Snapshot(t *Tableau) { f(t) }

// Options configures Solve.
//
//   - Sink      — optional snapshot consumer; receives the initial
//     tableau and the tableau after every pivot.
//   - MaxPivots — abort with ErrPivotBudget after this many pivots;
//     0 means unlimited. Cycling on degenerate tableaus is not
//     detected, so unbounded solves are a correctness risk the
//     caller opts into.
type Options struct {
	Sink      Sink
	MaxPivots int
}

// DefaultOptions returns the zero configuration: no sink, no pivot cap.
func DefaultOptions() Options {
	return Options{}
}

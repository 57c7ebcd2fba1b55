// Package simplex: the termination protocol.
// Solve owns the snapshot-pivot-test loop the engine itself stays out
// of: the tableau is displayed, pivoted, and re-tested until optimal.

package simplex

import "github.com/katalvlaran/ratlp/logger"

// Solve drives the tableau to optimality and extracts the decision:
// snapshot the current tableau, pivot, repeat until IsOptimal holds,
// then return Decision(). opts may be nil for DefaultOptions.
//
// The sink (when set) receives a deep clone of the initial tableau and
// of the tableau after every pivot, so a renderer can display solver
// progress without racing the mutation. Each pivot is logged at debug
// level with the entering and leaving variables.
//
// Errors:
//   - ErrNilTableau  — t is nil.
//   - ErrNoPivotRow  — an improving column has no positive entry, the
//     problem is unbounded.
//   - ErrPivotBudget — Options.MaxPivots pivots were applied without
//     reaching optimality.
//
// With MaxPivots == 0 a degenerate tableau may cycle forever; that
// hazard is the caller's to bound.
func Solve(t *Tableau, opts *Options) (Decision, error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	log := logger.Logger().With().Str("component", "simplex").Logger()

	if o.Sink != nil {
		o.Sink.Snapshot(t.Clone()) // initial tableau, before any pivot
	}

	var pivots int
	for !t.IsOptimal() {
		if o.MaxPivots > 0 && pivots >= o.MaxPivots {
			return nil, ErrPivotBudget
		}

		// Select here rather than via Pivot so the step can be logged.
		col, err := t.PivotColumn()
		if err != nil {
			return nil, err // unreachable while !IsOptimal, kept for the contract
		}
		row, err := t.PivotRow(col)
		if err != nil {
			return nil, err // unbounded
		}
		entering, leaving := t.cols[col], t.basis[row]
		t.pivotAt(row, col)
		pivots++

		log.Debug().
			Int("pivot", pivots).
			Str("entering", entering).
			Str("leaving", leaving).
			Msg("pivot applied")

		if o.Sink != nil {
			o.Sink.Snapshot(t.Clone())
		}
	}

	log.Debug().Int("pivots", pivots).Msg("tableau optimal")

	return t.Decision()
}

// Package simplex: sentinel error set.
// Every message is prefixed with "simplex: ..." and callers match with
// errors.Is. Sentinels may be wrapped with fmt.Errorf("ctx: %w", ErrX)
// where positional context is essential; never wrap them twice.

package simplex

import "errors"

var (
	// ErrNilTableau indicates that a nil *Tableau was used.
	ErrNilTableau = errors.New("simplex: nil tableau")

	// ErrInvalidDimension is returned by the builders when the coefficient
	// matrix has fewer than 2 constraint rows, a row narrower than 5
	// cells, or inconsistent row widths.
	ErrInvalidDimension = errors.New("simplex: invalid tableau dimensions")

	// ErrOutOfRange indicates that a row or column index is outside the
	// numeric grid. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("simplex: index out of range")

	// ErrNoPivotColumn is returned by pivot-column selection when no
	// objective-row entry is negative: the tableau is already optimal and
	// the caller should have checked IsOptimal first.
	ErrNoPivotColumn = errors.New("simplex: no pivot column: tableau already optimal")

	// ErrNoPivotRow is returned when no constraint row yields a positive
	// ratio for the chosen pivot column: the problem is unbounded.
	ErrNoPivotRow = errors.New("simplex: no pivot row: problem is unbounded")

	// ErrNotOptimal is returned by Decision when extraction is requested
	// before optimality is reached.
	ErrNotOptimal = errors.New("simplex: tableau is not optimal")

	// ErrPivotBudget is returned by Solve when Options.MaxPivots pivots
	// were applied without reaching optimality (a likely cycle).
	ErrPivotBudget = errors.New("simplex: pivot budget exhausted")
)

// Package simplex: the pivoting engine.
// All ordering and sign decisions run on exact rationals (frac.Cmp /
// frac.Sign); no cell is ever converted to float64 on a control path.

package simplex

import (
	"fmt"

	"github.com/katalvlaran/ratlp/frac"
)

// PivotColumn selects the entering column by Dantzig's rule: the
// decision/slack column whose objective-row entry (reduced cost) is most
// negative.
//
// The scan runs from the rightmost decision/slack column to the
// leftmost; an equally negative entry displaces the incumbent, so the
// leftmost tying column wins. Returns ErrNoPivotColumn when no entry is
// negative — the tableau is already optimal, and callers are expected to
// check IsOptimal before selecting.
// Complexity: O(c).
func (t *Tableau) PivotColumn() (int, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	obj := t.objRow()
	best := -1
	var bestVal, v frac.Fraction
	for col := t.varCols() - 1; col >= 0; col-- { // right-to-left scan
		v = t.at(obj, col)
		if v.Sign() >= 0 {
			continue // only negative reduced costs are candidates
		}
		if best < 0 || v.Cmp(bestVal) <= 0 { // ties displace: leftmost wins
			best, bestVal = col, v
		}
	}
	if best < 0 {
		return 0, ErrNoPivotColumn
	}

	return best, nil
}

// PivotRow selects the leaving row for the given pivot column by the
// minimum ratio test: among constraint rows whose pivot-column entry is
// strictly positive, the smallest RHS/entry ratio wins. Rows with a
// non-positive entry have no ratio and are never candidates — that is a
// deliberate exclusion, not an error.
//
// The scan runs from the last constraint row to the first, replacing the
// current minimum only on a strictly smaller ratio, so the row with the
// larger index wins exact ties. Returns ErrNoPivotRow when no row
// produces a ratio — the problem is unbounded in the chosen direction.
// Complexity: O(r).
func (t *Tableau) PivotRow(col int) (int, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	if col < 0 || col >= t.varCols() {
		return 0, fmt.Errorf("PivotRow(%d): %w", col, ErrOutOfRange)
	}
	best := -1
	var bestRatio, entry, ratio frac.Fraction
	for row := t.Constraints() - 1; row >= 0; row-- { // last-to-first scan
		entry = t.at(row, col)
		if entry.Sign() <= 0 {
			continue // no ratio for this row
		}
		ratio, _ = t.at(row, t.rhsCol()).Div(entry) // entry > 0, cannot fail
		if best < 0 || ratio.Cmp(bestRatio) < 0 {   // strict improvement only
			best, bestRatio = row, ratio
		}
	}
	if best < 0 {
		return 0, ErrNoPivotRow
	}

	return best, nil
}

// Pivot performs one full simplex step in place: select the pivot column
// and row, relabel the pivot row's basis slot with the entering column's
// header label, scale the pivot row so the pivot element becomes 1, and
// eliminate the pivot column from every other row (Gauss-Jordan).
//
// Returns the mutated tableau, or ErrNoPivotColumn / ErrNoPivotRow from
// the selection stage with the tableau untouched.
// Complexity: O(r*c).
func (t *Tableau) Pivot() (*Tableau, error) {
	col, err := t.PivotColumn()
	if err != nil {
		return nil, err
	}
	row, err := t.PivotRow(col)
	if err != nil {
		return nil, err
	}
	t.pivotAt(row, col)

	return t, nil
}

// pivotAt applies the elimination step for an already-selected pivot
// cell. The entry at (row, col) must be strictly positive.
func (t *Tableau) pivotAt(row, col int) {
	// The entering variable becomes basic in the pivot row.
	t.basis[row] = t.cols[col]

	// Scale the pivot row so the pivot element becomes 1.
	pivot := t.at(row, col)
	var i, j int
	var v, factor frac.Fraction
	for j = 0; j < t.Cols(); j++ {
		v, _ = t.at(row, j).Div(pivot) // pivot > 0, cannot fail
		t.set(row, j, v)
	}

	// Zero the pivot column everywhere else:
	// rowI ← rowI − pivotRow × rowI[col], objective row included.
	for i = 0; i < t.Rows(); i++ {
		if i == row {
			continue
		}
		factor = t.at(i, col)
		if factor.IsZero() {
			continue // already eliminated
		}
		for j = 0; j < t.Cols(); j++ {
			t.set(i, j, t.at(i, j).Sub(t.at(row, j).Mul(factor)))
		}
	}
}

// IsOptimal reports whether every interior cell of the objective row
// (all columns except the trailing RHS) is non-negative: no reduced cost
// promises further improvement.
// Complexity: O(c).
func (t *Tableau) IsOptimal() bool {
	if t == nil {
		return false
	}
	obj := t.objRow()
	for col := 0; col < t.rhsCol(); col++ {
		if t.at(obj, col).Sign() < 0 {
			return false
		}
	}

	return true
}

// Decision extracts the optimal assignment from a solved tableau: every
// labeled row maps its basic-variable label to its RHS value (the
// objective row contributes ObjectiveLabel → objective value), and every
// remaining header variable is implicitly 0.
//
// Returns ErrNotOptimal when IsOptimal does not hold.
// Complexity: O(r + c).
func (t *Tableau) Decision() (Decision, error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	if !t.IsOptimal() {
		return nil, ErrNotOptimal
	}

	d := make(Decision, len(t.cols))
	for row, label := range t.basis { // basic variables carry their RHS
		d[label] = t.at(row, t.rhsCol())
	}
	for _, label := range t.cols[:t.rhsCol()] { // everything non-basic is 0
		if _, ok := d[label]; !ok {
			d[label] = frac.FromInt(0)
		}
	}

	return d, nil
}

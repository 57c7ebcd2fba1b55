package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratlp/frac"
)

// Tableau is the matrix representation of a linear program's current
// basic feasible solution: a rectangular grid of exact rational cells
// stored row-major in a flat slice, plus the labels around it.
//
// Shape, for n decision variables and m constraints:
//   - numeric columns: n decision + m slack + ObjectiveLabel + RHSLabel
//   - numeric rows: m constraint rows followed by the objective row
//   - cols holds the header label of every numeric column
//   - basis holds the basic-variable label of every row (initially
//     s1..sm; ObjectiveLabel for the objective row)
//
// A Tableau is created once by a builder, mutated in place by successive
// pivots, and read (never mutated) once optimal. It is not safe for
// concurrent use.
type Tableau struct {
	cols  []string        // column labels, length c
	basis []string        // per-row basic-variable labels, length r
	cells []frac.Fraction // flat backing storage, length r*c
}

// Rows returns the number of numeric rows (constraints + objective).
func (t *Tableau) Rows() int { return len(t.basis) }

// Cols returns the number of numeric columns (variables + "P" + "RHS").
func (t *Tableau) Cols() int { return len(t.cols) }

// Constraints returns the number of constraint rows.
func (t *Tableau) Constraints() int { return len(t.basis) - 1 }

// Columns returns a copy of the header labels, RHSLabel last.
func (t *Tableau) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)

	return out
}

// Basis returns a copy of the per-row basic-variable labels, the
// objective row's ObjectiveLabel last.
func (t *Tableau) Basis() []string {
	out := make([]string, len(t.basis))
	copy(out, t.basis)

	return out
}

// Column index of the right-hand side; the objective-value column sits
// immediately to its left, decision/slack columns span [0, varCols).
func (t *Tableau) rhsCol() int { return len(t.cols) - 1 }

// varCols returns the count of decision+slack columns.
func (t *Tableau) varCols() int { return len(t.cols) - 2 }

// objRow returns the index of the objective row.
func (t *Tableau) objRow() int { return len(t.basis) - 1 }

// at reads cell (row, col) without bounds checks; engine-internal.
func (t *Tableau) at(row, col int) frac.Fraction {
	return t.cells[row*len(t.cols)+col]
}

// set writes cell (row, col) without bounds checks; engine-internal.
func (t *Tableau) set(row, col int, v frac.Fraction) {
	t.cells[row*len(t.cols)+col] = v
}

// At retrieves the cell at (row, col) of the numeric grid.
// Returns ErrOutOfRange when either index is outside bounds.
// Complexity: O(1).
func (t *Tableau) At(row, col int) (frac.Fraction, error) {
	if t == nil {
		return frac.Fraction{}, ErrNilTableau
	}
	if row < 0 || row >= t.Rows() || col < 0 || col >= t.Cols() {
		return frac.Fraction{}, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return t.at(row, col), nil
}

// RHS returns the right-hand-side value of the given row.
// Returns ErrOutOfRange when the row index is outside bounds.
func (t *Tableau) RHS(row int) (frac.Fraction, error) {
	if t == nil {
		return frac.Fraction{}, ErrNilTableau
	}
	if row < 0 || row >= t.Rows() {
		return frac.Fraction{}, fmt.Errorf("RHS(%d): %w", row, ErrOutOfRange)
	}

	return t.at(row, t.rhsCol()), nil
}

// Clone returns a deep copy of the tableau: labels and cells share no
// storage with the receiver. Solve hands clones to the snapshot sink.
// Complexity: O(r*c) time and memory.
func (t *Tableau) Clone() *Tableau {
	if t == nil {
		return nil
	}
	cp := &Tableau{
		cols:  make([]string, len(t.cols)),
		basis: make([]string, len(t.basis)),
		cells: make([]frac.Fraction, len(t.cells)),
	}
	copy(cp.cols, t.cols)
	copy(cp.basis, t.basis)
	copy(cp.cells, t.cells)

	return cp
}

// String implements fmt.Stringer for debugging: a header line of column
// labels followed by one labeled line per row. Cells render in their
// exact literal form (frac.Fraction.String), tab-separated.
func (t *Tableau) String() string {
	if t == nil {
		return "<nil tableau>"
	}
	var b strings.Builder
	b.WriteString("\t" + strings.Join(t.cols, "\t") + "\n")
	var i, j int
	for i = 0; i < t.Rows(); i++ { // one line per labeled row
		b.WriteString(t.basis[i])
		for j = 0; j < t.Cols(); j++ {
			b.WriteByte('\t')
			b.WriteString(t.at(i, j).String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Package simplex: tableau builders.
// Both builders feed the same validated construction path: raw numeric
// rows carry decision coefficients, slack coefficients and the RHS cell;
// the objective-value column is inserted here, never supplied by callers.

package simplex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ratlp/frac"
)

// Minimum valid shape of the raw coefficient matrix: 2 constraint rows,
// 5 cells per row (2 decision + 2 slack + RHS).
const (
	minConstraintRows = 2
	minRowWidth       = 5
)

// Parse builds an initial tableau from a textual coefficient matrix:
// one whitespace-separated row per line, constraint rows first, the
// objective row (negated objective coefficients) last. Slack columns
// must already be present; the trailing cell of each row is the RHS.
//
// Each cell must be a frac.Parse literal (integer, ratio or decimal);
// offending cells fail with frac.ErrBadLiteral wrapped with their
// position. Shape violations fail with ErrInvalidDimension: fewer than
// 2 constraint rows, any row narrower than 5 cells, or inconsistent
// row widths.
//
// Example (maximize 40x1+30x2 s.t. x1+x2 ≤ 12, 2x1+x2 ≤ 16):
//
//	t, err := simplex.Parse(`
//	    1   1  1  0  12
//	    2   1  0  1  16
//	  -40 -30  0  0   0`)
func Parse(text string) (*Tableau, error) {
	var rows [][]frac.Fraction
	var lineNo int
	for _, line := range strings.Split(text, "\n") {
		lineNo++
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank lines carry no row
		}
		row := make([]frac.Fraction, len(fields))
		for j, cell := range fields {
			v, err := frac.Parse(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, cell %d: %w", lineNo, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return newTableau(rows)
}

// Build assembles an initial tableau from a maximization problem given
// in model form: objective coefficients, one coefficient row per ≤
// constraint, and the constraint bounds. Slack columns (one per
// constraint, an identity block) and the negated objective row are
// appended here, then the shared validated construction runs.
//
// Fails with ErrInvalidDimension when any constraint row's width differs
// from len(objective), len(rhs) differs from len(constraints), or the
// assembled matrix is below the 2×5 minimum shape.
func Build(objective []frac.Fraction, constraints [][]frac.Fraction, rhs []frac.Fraction) (*Tableau, error) {
	n, m := len(objective), len(constraints)
	if len(rhs) != m {
		return nil, fmt.Errorf("Build: %d constraints, %d bounds: %w", m, len(rhs), ErrInvalidDimension)
	}

	// Assemble raw rows: coefficients, slack identity, RHS.
	rows := make([][]frac.Fraction, 0, m+1)
	var i, j int
	for i = 0; i < m; i++ {
		if len(constraints[i]) != n {
			return nil, fmt.Errorf("Build: constraint %d has %d coefficients, want %d: %w",
				i+1, len(constraints[i]), n, ErrInvalidDimension)
		}
		row := make([]frac.Fraction, 0, n+m+1)
		row = append(row, constraints[i]...)
		for j = 0; j < m; j++ { // slack identity block
			if j == i {
				row = append(row, frac.FromInt(1))
			} else {
				row = append(row, frac.FromInt(0))
			}
		}
		row = append(row, rhs[i])
		rows = append(rows, row)
	}

	// Objective row: negated coefficients, zero slacks, zero RHS.
	obj := make([]frac.Fraction, 0, n+m+1)
	for j = 0; j < n; j++ {
		obj = append(obj, objective[j].Neg())
	}
	for j = 0; j <= m; j++ {
		obj = append(obj, frac.FromInt(0))
	}
	rows = append(rows, obj)

	return newTableau(rows)
}

// newTableau validates the raw coefficient matrix and attaches labels.
//
// Stage 1 (Validate): ≥2 constraint rows, ≥5 cells per row, uniform
// widths, ≥1 decision column once the slack block is accounted for.
// Stage 2 (Label): columns x1..xn, s1..sm, ObjectiveLabel, RHSLabel;
// basis s1..sm plus ObjectiveLabel for the objective row.
// Stage 3 (Fill): copy cells, splicing in the objective-value column
// (0 in constraint rows, 1 in the objective row) before the RHS.
func newTableau(rows [][]frac.Fraction) (*Tableau, error) {
	m := len(rows) - 1 // constraint rows; the last row is the objective
	if m < minConstraintRows {
		return nil, fmt.Errorf("%d constraint rows, need at least %d: %w",
			m, minConstraintRows, ErrInvalidDimension)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, row 1 has %d: %w",
				i+1, len(row), w, ErrInvalidDimension)
		}
	}
	if w < minRowWidth {
		return nil, fmt.Errorf("rows are %d cells wide, need at least %d: %w",
			w, minRowWidth, ErrInvalidDimension)
	}
	n := w - m - 1 // decision columns = width − slack block − RHS
	if n < 1 {
		return nil, fmt.Errorf("no decision columns in %d-cell rows with %d constraints: %w",
			w, m, ErrInvalidDimension)
	}

	// Header labels and the initial basis.
	cols := make([]string, 0, n+m+2)
	var i int
	for i = 1; i <= n; i++ {
		cols = append(cols, decisionPrefix+strconv.Itoa(i))
	}
	for i = 1; i <= m; i++ {
		cols = append(cols, slackPrefix+strconv.Itoa(i))
	}
	cols = append(cols, ObjectiveLabel, RHSLabel)

	basis := make([]string, 0, m+1)
	for i = 1; i <= m; i++ {
		basis = append(basis, slackPrefix+strconv.Itoa(i))
	}
	basis = append(basis, ObjectiveLabel)

	// Flat row-major fill, inserting the objective-value column.
	t := &Tableau{
		cols:  cols,
		basis: basis,
		cells: make([]frac.Fraction, 0, (m+1)*(n+m+2)),
	}
	for i, row := range rows {
		t.cells = append(t.cells, row[:w-1]...) // decision + slack cells
		if i == m {
			t.cells = append(t.cells, frac.FromInt(1)) // objective row: P = 1
		} else {
			t.cells = append(t.cells, frac.FromInt(0))
		}
		t.cells = append(t.cells, row[w-1]) // RHS cell
	}

	return t, nil
}
